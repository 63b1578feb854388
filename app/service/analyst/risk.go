package analyst

import (
	"fmt"
	"math"

	"corpintel/app/service/collector"

	"github.com/elliotchance/pie/v2"
)

var genericMarketRisks = []string{
	"General market conditions and macroeconomic factors may impact performance",
	"Sector-specific trends could influence stock trajectory",
	"Regulatory changes in the technology sector remain a consideration",
}

// AssessRisks applies the news and stock heuristics and derives the
// overall risk level from the count of specific (non-generic) factors.
func AssessRisks(articles []collector.Article, quote *collector.StockQuote) RiskAssessment {
	categories := map[string][]string{}
	var factors []string

	newsRisks := newsRiskFactors(articles)
	if len(newsRisks) > 0 {
		categories["News & Sentiment Risks"] = newsRisks
		factors = append(factors, newsRisks...)
	}

	stockRisks := stockRiskFactors(quote)
	if len(stockRisks) > 0 {
		categories["Stock Performance Risks"] = stockRisks
		factors = append(factors, stockRisks...)
	}

	specificCount := len(factors)

	categories["General Market Risks"] = genericMarketRisks
	factors = append(factors, genericMarketRisks...)

	level, description := riskLevel(specificCount)

	return RiskAssessment{
		Level:       level,
		Description: description,
		Factors:     factors,
		Categories:  categories,
	}
}

func riskLevel(specificCount int) (string, string) {
	switch {
	case specificCount >= 5:
		return RiskLevelHigh, "Multiple risk factors identified. Exercise caution."
	case specificCount >= 3:
		return RiskLevelModerate, "Several risk factors present. Conduct thorough due diligence."
	default:
		return RiskLevelLow, "Relatively few specific risks identified. Standard investment considerations apply."
	}
}

func newsRiskFactors(articles []collector.Article) []string {
	if len(articles) == 0 {
		return []string{"Limited news coverage may indicate reduced market visibility"}
	}

	var risks []string

	negative := pie.Filter(articles, func(a collector.Article) bool {
		return a.SentimentScore < -0.2
	})
	if len(negative) > len(articles)/2 {
		risks = append(risks, "Predominantly negative news sentiment may impact investor confidence")
	}

	badEarnings := pie.Any(articles, func(a collector.Article) bool {
		return a.Category == "earnings" && a.SentimentScore < 0
	})
	if badEarnings {
		risks = append(risks, "Recent earnings reports show concerning trends or missed expectations")
	}

	hasLeadership := pie.Any(articles, func(a collector.Article) bool {
		return a.Category == "leadership"
	})
	if hasLeadership {
		risks = append(risks, "Leadership changes may create short-term uncertainty")
	}

	return risks
}

func stockRiskFactors(quote *collector.StockQuote) []string {
	if quote == nil {
		return []string{"Unable to assess stock-related risks due to data unavailability"}
	}

	var risks []string

	if daily := math.Abs(quote.DailyChangePct); daily > 3 {
		risks = append(risks, fmt.Sprintf("High daily volatility (%.1f%%) indicates increased trading risk", daily))
	}

	if quote.MonthlyChangePct < -10 {
		risks = append(risks, fmt.Sprintf("Significant monthly decline (%.1f%%) may signal underlying issues", quote.MonthlyChangePct))
	}

	if quote.PERatio > 40 {
		risks = append(risks, fmt.Sprintf("High P/E ratio (%.1f) suggests premium valuation with limited upside", quote.PERatio))
	} else if quote.PERatio > 0 && quote.PERatio < 10 {
		risks = append(risks, fmt.Sprintf("Low P/E ratio (%.1f) may indicate market concerns about future growth", quote.PERatio))
	}

	if quote.High52W > 0 && quote.CurrentPrice > 0 && quote.CurrentPrice < quote.High52W*0.7 {
		risks = append(risks, "Trading significantly below 52-week high indicates potential downtrend")
	}

	if quote.Low52W > 0 && quote.CurrentPrice > 0 && quote.CurrentPrice < quote.Low52W*1.1 {
		risks = append(risks, "Trading near 52-week low suggests ongoing price pressure")
	}

	if quote.Volume > 0 && quote.AvgVolume > 0 && quote.Volume > quote.AvgVolume*2 {
		risks = append(risks, "Unusually high trading volume may indicate significant market events")
	}

	return risks
}
