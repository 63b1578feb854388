package collector

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"corpintel/app/client/newsapi"
	"corpintel/app/client/yahoo"
	"corpintel/app/config"

	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

const articleCount = 5

type newsSource interface {
	Configured() bool
	Everything(ctx context.Context, query string, pageSize int) ([]newsapi.Article, error)
}

type quoteSource interface {
	Chart(ctx context.Context, ticker string) (*yahoo.Chart, error)
}

type Service struct {
	cfg    *config.Config
	news   newsSource
	quotes quoteSource

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:    do.MustInvoke[*config.Config](di),
		news:   do.MustInvoke[*newsapi.Client](di),
		quotes: do.MustInvoke[*yahoo.Client](di),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Collect gathers news and stock data for a company. The two fetches are
// independent and run concurrently; any live-source failure is masked by
// simulated data, so Collect never fails.
func (s *Service) Collect(ctx context.Context, company string) ([]Article, *StockQuote) {
	var (
		articles []Article
		quote    *StockQuote
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		articles = s.collectNews(ctx, company)
		return nil
	})
	g.Go(func() error {
		quote = s.collectQuote(ctx, company)
		return nil
	})

	_ = g.Wait()

	return articles, quote
}

func (s *Service) collectNews(ctx context.Context, company string) []Article {
	if s.news.Configured() {
		raw, err := s.news.Everything(ctx, company, articleCount)
		if err == nil && len(raw) > 0 {
			return s.mapLiveNews(raw)
		}
		if err != nil {
			slog.Warn("Live news fetch failed, using simulated articles",
				"company", company,
				"error", err,
			)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return simulateNews(s.rnd, company, articleCount)
}

func (s *Service) mapLiveNews(raw []newsapi.Article) []Article {
	articles := make([]Article, 0, len(raw))

	for _, item := range raw {
		s.mu.Lock()
		base := roundTo(s.rnd.Float64()*0.4-0.2, 2)
		s.mu.Unlock()

		articles = append(articles, Article{
			Headline:       item.Title,
			Source:         item.Source.Name,
			PublishedAt:    item.PublishedAt,
			Category:       "general",
			SentimentScore: scoreSentiment(item.Title, base),
			URL:            item.URL,
		})
	}

	return articles
}

func (s *Service) collectQuote(ctx context.Context, company string) *StockQuote {
	ticker := TickerFor(company)

	chart, err := s.quotes.Chart(ctx, ticker)
	if err != nil {
		slog.Warn("Live quote fetch failed, using simulated data",
			"company", company,
			"ticker", ticker,
			"error", err,
		)

		s.mu.Lock()
		defer s.mu.Unlock()
		return simulateQuote(s.rnd, company)
	}

	return quoteFromChart(company, chart)
}

func quoteFromChart(company string, chart *yahoo.Chart) *StockQuote {
	current := chart.Price
	if current == 0 {
		current = chart.Closes[len(chart.Closes)-1]
	}

	prevClose := current
	if len(chart.Closes) > 1 {
		prevClose = chart.Closes[len(chart.Closes)-2]
	}
	monthStart := chart.Closes[0]

	var dailyChange, monthlyChange float64
	if prevClose != 0 {
		dailyChange = (current - prevClose) / prevClose * 100
	}
	if monthStart != 0 {
		monthlyChange = (current - monthStart) / monthStart * 100
	}

	var volume, avgVolume int64
	if len(chart.Volumes) > 0 {
		volume = chart.Volumes[len(chart.Volumes)-1]

		var total int64
		for _, v := range chart.Volumes {
			total += v
		}
		avgVolume = total / int64(len(chart.Volumes))
	}

	name := chart.LongName
	if name == "" {
		name = titleCase(company)
	}
	currency := chart.Currency
	if currency == "" {
		currency = "USD"
	}

	return &StockQuote{
		Ticker:           chart.Symbol,
		CompanyName:      name,
		CurrentPrice:     roundTo(current, 2),
		Currency:         currency,
		DailyChangePct:   roundTo(dailyChange, 2),
		MonthlyChangePct: roundTo(monthlyChange, 2),
		High52W:          roundTo(chart.High52W, 2),
		Low52W:           roundTo(chart.Low52W, 2),
		Volume:           volume,
		AvgVolume:        avgVolume,
		LastUpdated:      chart.FetchedAt,
		DataSource:       "yahoo",
	}
}
