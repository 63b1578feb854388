package pipeline

import (
	"fmt"
	"strings"

	"corpintel/app/service/analyst"
	"corpintel/app/service/collector"

	"github.com/elliotchance/pie/v2"
)

const reportedArticles = 5

var divider = strings.Repeat("=", 60)

const disclaimer = `DISCLAIMER: This report is generated for informational purposes
only and should not be considered as financial advice. Always
conduct your own research and consult with qualified financial
professionals before making investment decisions.`

func renderReport(record *Record) string {
	var sections []string

	sections = append(sections, fmt.Sprintf("%s\nCOMPANY INTELLIGENCE REPORT: %s\n%s",
		divider, strings.ToUpper(record.Company), divider))

	if record.Stock != nil {
		sections = append(sections, "## Stock Performance\n"+analyst.FormatStockSummary(record.Stock))
	}

	if len(record.News) > 0 {
		sections = append(sections, "## Recent News Headlines\n"+renderHeadlines(record.News))
	}

	if record.Analysis != "" {
		sections = append(sections, "## Market Analysis\n"+record.Analysis)
	}

	if len(record.RiskFactors) > 0 {
		lines := pie.Map(record.RiskFactors, func(risk string) string {
			return "  [!] " + risk
		})
		header := "## Risk Factors"
		if record.RiskLevel != "" {
			header = fmt.Sprintf("## Risk Factors (Level: %s)", record.RiskLevel)
		}
		sections = append(sections, header+"\n"+strings.Join(lines, "\n"))
	}

	if record.Error != "" {
		sections = append(sections, "## Issues\n  "+record.Error)
	}

	sections = append(sections, fmt.Sprintf("%s\n%s\n%s", divider, disclaimer, divider))

	return strings.Join(sections, "\n\n")
}

func renderHeadlines(articles []collector.Article) string {
	var lines []string

	for i, article := range articles {
		if i >= reportedArticles {
			break
		}

		marker := "[=]"
		if article.SentimentScore > 0.2 {
			marker = "[+]"
		} else if article.SentimentScore < -0.2 {
			marker = "[-]"
		}

		lines = append(lines, fmt.Sprintf("  %s %s", marker, article.Headline))
		lines = append(lines, fmt.Sprintf("     Source: %s | %s",
			article.Source, titleWord(article.Category)))
	}

	return strings.Join(lines, "\n")
}

func titleWord(s string) string {
	if s == "" {
		return "General"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
