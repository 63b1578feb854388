package analyst

import (
	"context"
	"strings"
	"testing"

	"corpintel/app/service/collector"
)

func TestAnalyzeWithoutClientUsesTemplate(t *testing.T) {
	s := &Service{}
	articles := []collector.Article{
		{Headline: "Acme Launches New Product", Category: "product", SentimentScore: 0.5, Source: "Reuters"},
	}

	analysis := s.Analyze(context.Background(), "Acme", articles, calmQuote())

	if analysis == nil {
		t.Fatal("Analyze returned nil")
	}
	if !strings.Contains(analysis.Summary, "Market Summary for Acme") {
		t.Errorf("summary missing template header:\n%s", analysis.Summary)
	}
	if !strings.Contains(analysis.Summary, "Acme Launches New Product") {
		t.Error("summary missing the news headline")
	}
	if analysis.Risk.Level == "" {
		t.Error("risk assessment missing")
	}
}

func TestAnalyzeWithNoDataStillSummarizes(t *testing.T) {
	s := &Service{}

	analysis := s.Analyze(context.Background(), "Ghost Corp", nil, nil)

	if !strings.Contains(analysis.Summary, "No recent news available.") {
		t.Error("summary missing empty-news placeholder")
	}
	if !strings.Contains(analysis.Summary, "Stock data unavailable.") {
		t.Error("summary missing missing-stock placeholder")
	}
}

func TestFormatNewsSummary(t *testing.T) {
	articles := []collector.Article{
		{Headline: "Up Day", Category: "market", Source: "CNBC", SentimentScore: 0.5},
		{Headline: "Down Day", Category: "earnings", Source: "Reuters", SentimentScore: -0.5},
		{Headline: "Flat Day", Category: "industry", Source: "Bloomberg", SentimentScore: 0.1},
	}

	got := FormatNewsSummary(articles)

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "[MARKET]") || !strings.Contains(lines[0], "positive") {
		t.Errorf("bad positive line: %s", lines[0])
	}
	if !strings.Contains(lines[1], "negative") {
		t.Errorf("bad negative line: %s", lines[1])
	}
	if !strings.Contains(lines[2], "neutral") {
		t.Errorf("bad neutral line: %s", lines[2])
	}
}

func TestFormatStockSummaryNil(t *testing.T) {
	if got := FormatStockSummary(nil); got != "Stock data unavailable." {
		t.Errorf("nil quote formatted as %q", got)
	}
}

func TestFormatStockSummaryFields(t *testing.T) {
	quote := calmQuote()
	quote.MarketCap = 2_500_000_000_000
	quote.Sector = "Technology"

	got := FormatStockSummary(quote)

	for _, want := range []string{
		"Current Price: $200.00",
		"52-Week Range: $150.00 - $220.00",
		"Market Cap: $2.50T",
		"P/E Ratio: 25.00",
		"Sector: Technology",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestFormatMarketCap(t *testing.T) {
	cases := []struct {
		cap  int64
		want string
	}{
		{0, "N/A"},
		{-5, "N/A"},
		{900, "$900"},
		{3_500_000, "$3.50M"},
		{12_000_000_000, "$12.00B"},
		{1_200_000_000_000, "$1.20T"},
	}

	for _, tc := range cases {
		if got := FormatMarketCap(tc.cap); got != tc.want {
			t.Errorf("FormatMarketCap(%d) = %q, want %q", tc.cap, got, tc.want)
		}
	}
}
