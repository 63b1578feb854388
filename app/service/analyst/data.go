package analyst

import (
	"fmt"
	"strings"

	"corpintel/app/service/collector"
)

const (
	RiskLevelLow      = "LOW"
	RiskLevelModerate = "MODERATE"
	RiskLevelHigh     = "HIGH"
)

type Analysis struct {
	Summary string
	Risk    RiskAssessment
}

type RiskAssessment struct {
	Level       string
	Description string
	Factors     []string
	Categories  map[string][]string
}

// FormatNewsSummary renders articles as bullet lines for prompts and
// reports.
func FormatNewsSummary(articles []collector.Article) string {
	if len(articles) == 0 {
		return "No recent news available."
	}

	lines := make([]string, 0, len(articles))
	for _, article := range articles {
		sentiment := "neutral"
		if article.SentimentScore > 0.2 {
			sentiment = "positive"
		} else if article.SentimentScore < -0.2 {
			sentiment = "negative"
		}

		lines = append(lines, fmt.Sprintf("- [%s] %s (Source: %s, Sentiment: %s)",
			strings.ToUpper(article.Category), article.Headline, article.Source, sentiment))
	}

	return strings.Join(lines, "\n")
}

// FormatStockSummary renders a quote as a metric block.
func FormatStockSummary(quote *collector.StockQuote) string {
	if quote == nil {
		return "Stock data unavailable."
	}

	dailyTrend := "down"
	if quote.DailyChangePct > 0 {
		dailyTrend = "up"
	}
	monthlyTrend := "down"
	if quote.MonthlyChangePct > 0 {
		monthlyTrend = "up"
	}

	var b strings.Builder
	b.WriteString("Stock Performance Summary:\n")
	fmt.Fprintf(&b, "- Current Price: $%.2f %s\n", quote.CurrentPrice, quote.Currency)
	fmt.Fprintf(&b, "- Daily Change: %.2f%% (%s)\n", quote.DailyChangePct, dailyTrend)
	fmt.Fprintf(&b, "- Monthly Change: %.2f%% (%s)\n", quote.MonthlyChangePct, monthlyTrend)
	fmt.Fprintf(&b, "- 52-Week Range: $%.2f - $%.2f\n", quote.Low52W, quote.High52W)
	fmt.Fprintf(&b, "- Market Cap: %s\n", FormatMarketCap(quote.MarketCap))
	if quote.PERatio > 0 {
		fmt.Fprintf(&b, "- P/E Ratio: %.2f\n", quote.PERatio)
	} else {
		b.WriteString("- P/E Ratio: N/A\n")
	}
	if quote.Sector != "" {
		fmt.Fprintf(&b, "- Sector: %s", quote.Sector)
	} else {
		b.WriteString("- Sector: N/A")
	}

	return b.String()
}

func FormatMarketCap(cap int64) string {
	switch {
	case cap <= 0:
		return "N/A"
	case cap >= 1_000_000_000_000:
		return fmt.Sprintf("$%.2fT", float64(cap)/1_000_000_000_000)
	case cap >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", float64(cap)/1_000_000_000)
	case cap >= 1_000_000:
		return fmt.Sprintf("$%.2fM", float64(cap)/1_000_000)
	default:
		return fmt.Sprintf("$%d", cap)
	}
}
