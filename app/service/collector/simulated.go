package collector

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"
)

type newsCategory struct {
	name      string
	templates []string
}

var newsCategories = []newsCategory{
	{
		name: "earnings",
		templates: []string{
			"{company} Reports Strong Q{quarter} Earnings, Beating Wall Street Expectations",
			"{company} Q{quarter} Revenue Surges {percent}% Year-Over-Year",
			"{company} Announces Record Profits in Latest Quarterly Report",
			"{company} Misses Earnings Estimates, Stock Dips in After-Hours Trading",
		},
	},
	{
		name: "product",
		templates: []string{
			"{company} Unveils New AI-Powered Product Line for Enterprise Customers",
			"{company} Launches Next-Generation Platform, Targeting $10B Market",
			"{company} Expands Product Portfolio with Strategic Acquisition",
			"{company} Announces Major Software Update with Enhanced Features",
		},
	},
	{
		name: "market",
		templates: []string{
			"Analysts Upgrade {company} to 'Strong Buy' Amid Market Optimism",
			"{company} Shares Rally on Strong Market Performance",
			"Institutional Investors Increase Stakes in {company}",
			"{company} Added to S&P 500 Index, Triggering Buying Spree",
		},
	},
	{
		name: "leadership",
		templates: []string{
			"{company} CEO Announces Bold Vision for Future Growth",
			"{company} Appoints New Chief Technology Officer from Tech Giant",
			"Board Approves {company}'s $5B Stock Buyback Program",
			"{company} Leadership Outlines Strategic Roadmap at Investor Day",
		},
	},
	{
		name: "industry",
		templates: []string{
			"{company} Partners with Major Cloud Provider to Expand Services",
			"{company} Forms Strategic Alliance to Enter New Markets",
			"Industry Report: {company} Leads Market Share in Key Segment",
			"{company} Invests $2B in Sustainable Technology Initiative",
		},
	},
}

var newsSources = []string{
	"Reuters", "Bloomberg", "CNBC", "Financial Times",
	"Wall Street Journal", "MarketWatch", "Yahoo Finance",
}

var positiveKeywords = []string{"beat", "surge", "rally", "record", "strong", "upgrade"}
var negativeKeywords = []string{"miss", "dip", "decline", "drop", "concern"}

// scoreSentiment assigns a naive lexical sentiment in [-1, 1]: the base
// magnitude keeps its sign unless a keyword forces it.
func scoreSentiment(headline string, base float64) float64 {
	lower := strings.ToLower(headline)

	for _, kw := range positiveKeywords {
		if strings.Contains(lower, kw) {
			return math.Abs(base)
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			return -math.Abs(base)
		}
	}

	return base
}

func simulateNews(rnd *rand.Rand, company string, count int) []Article {
	now := time.Now()
	articles := make([]Article, 0, count)
	slug := strings.ReplaceAll(strings.ToLower(company), " ", "-")

	for i := 0; i < count; i++ {
		category := newsCategories[rnd.Intn(len(newsCategories))]
		template := category.templates[rnd.Intn(len(category.templates))]

		headline := template
		headline = strings.ReplaceAll(headline, "{company}", company)
		headline = strings.ReplaceAll(headline, "{quarter}", strconv.Itoa(1+rnd.Intn(4)))
		headline = strings.ReplaceAll(headline, "{percent}", strconv.Itoa(5+rnd.Intn(41)))

		published := now.
			AddDate(0, 0, -rnd.Intn(8)).
			Add(-time.Duration(rnd.Intn(24)) * time.Hour)

		articles = append(articles, Article{
			Headline:       headline,
			Source:         newsSources[rnd.Intn(len(newsSources))],
			PublishedAt:    published,
			Category:       category.name,
			SentimentScore: scoreSentiment(headline, roundTo(rnd.Float64()*2-1, 2)),
			URL:            fmt.Sprintf("https://example.com/news/%s-%d", slug, i+1),
		})
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	return articles
}

func simulateQuote(rnd *rand.Rand, company string) *StockQuote {
	basePrice := 50 + rnd.Float64()*450

	return &StockQuote{
		Ticker:           TickerFor(company),
		CompanyName:      titleCase(company),
		CurrentPrice:     roundTo(basePrice, 2),
		Currency:         "USD",
		DailyChangePct:   roundTo(rnd.Float64()*10-5, 2),
		MonthlyChangePct: roundTo(rnd.Float64()*35-15, 2),
		High52W:          roundTo(basePrice*(1.1+rnd.Float64()*0.4), 2),
		Low52W:           roundTo(basePrice*(0.5+rnd.Float64()*0.4), 2),
		MarketCap:        10_000_000_000 + rnd.Int63n(490_000_000_000),
		PERatio:          roundTo(10+rnd.Float64()*40, 2),
		Volume:           1_000_000 + rnd.Int63n(49_000_000),
		AvgVolume:        5_000_000 + rnd.Int63n(25_000_000),
		Sector:           "Technology",
		Industry:         "Software & Services",
		LastUpdated:      time.Now(),
		DataSource:       "simulated",
	}
}

// TickerFor maps a company name to its ticker, falling back to the
// uppercased input for unknown companies.
func TickerFor(company string) string {
	normalized := strings.ToLower(strings.TrimSpace(company))
	if ticker, ok := tickerTable[normalized]; ok {
		return ticker
	}
	return strings.ToUpper(strings.TrimSpace(company))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func roundTo(v float64, digits int) float64 {
	factor := math.Pow10(digits)
	return math.Round(v*factor) / factor
}
