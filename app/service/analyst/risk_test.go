package analyst

import (
	"strings"
	"testing"

	"corpintel/app/service/collector"
)

func calmQuote() *collector.StockQuote {
	return &collector.StockQuote{
		Ticker:           "AAPL",
		CompanyName:      "Apple",
		CurrentPrice:     200,
		DailyChangePct:   0.5,
		MonthlyChangePct: 2,
		High52W:          220,
		Low52W:           150,
		PERatio:          25,
		Volume:           1_000_000,
		AvgVolume:        1_000_000,
	}
}

func TestAssessRisksLowWithCalmData(t *testing.T) {
	articles := []collector.Article{
		{Headline: "Apple Launches New Product", Category: "product", SentimentScore: 0.6},
		{Headline: "Apple Expands Services", Category: "industry", SentimentScore: 0.4},
	}

	risk := AssessRisks(articles, calmQuote())

	if risk.Level != RiskLevelLow {
		t.Errorf("level = %q, want %q", risk.Level, RiskLevelLow)
	}
	if len(risk.Factors) != len(genericMarketRisks) {
		t.Errorf("expected only generic risks, got %d factors", len(risk.Factors))
	}
	if _, ok := risk.Categories["General Market Risks"]; !ok {
		t.Error("missing General Market Risks category")
	}
}

func TestAssessRisksHighWithManyFactors(t *testing.T) {
	articles := []collector.Article{
		{Category: "earnings", SentimentScore: -0.8},
		{Category: "leadership", SentimentScore: -0.5},
		{Category: "market", SentimentScore: -0.6},
	}
	quote := calmQuote()
	quote.DailyChangePct = -5
	quote.MonthlyChangePct = -15
	quote.PERatio = 55

	risk := AssessRisks(articles, quote)

	if risk.Level != RiskLevelHigh {
		t.Errorf("level = %q, want %q", risk.Level, RiskLevelHigh)
	}
	if len(risk.Categories["News & Sentiment Risks"]) != 3 {
		t.Errorf("news risks = %d, want 3", len(risk.Categories["News & Sentiment Risks"]))
	}
	if len(risk.Categories["Stock Performance Risks"]) != 3 {
		t.Errorf("stock risks = %d, want 3", len(risk.Categories["Stock Performance Risks"]))
	}
}

func TestAssessRisksNilQuote(t *testing.T) {
	risk := AssessRisks(nil, nil)

	var hasDataRisk bool
	for _, f := range risk.Factors {
		if strings.Contains(f, "data unavailability") {
			hasDataRisk = true
		}
	}
	if !hasDataRisk {
		t.Error("nil quote should yield a data unavailability factor")
	}
}

func TestNewsRiskFactorsEmptyCoverage(t *testing.T) {
	risks := newsRiskFactors(nil)

	if len(risks) != 1 || !strings.Contains(risks[0], "Limited news coverage") {
		t.Errorf("unexpected risks for empty coverage: %v", risks)
	}
}

func TestNewsRiskFactorsNegativeMajority(t *testing.T) {
	articles := []collector.Article{
		{Category: "market", SentimentScore: -0.5},
		{Category: "market", SentimentScore: -0.4},
		{Category: "product", SentimentScore: 0.3},
	}

	risks := newsRiskFactors(articles)

	if len(risks) != 1 || !strings.Contains(risks[0], "negative news sentiment") {
		t.Errorf("unexpected risks: %v", risks)
	}
}

func TestStockRiskFactorsThresholds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*collector.StockQuote)
		want   string
	}{
		{
			name:   "daily volatility",
			mutate: func(q *collector.StockQuote) { q.DailyChangePct = -4 },
			want:   "daily volatility",
		},
		{
			name:   "monthly decline",
			mutate: func(q *collector.StockQuote) { q.MonthlyChangePct = -12 },
			want:   "monthly decline",
		},
		{
			name:   "high pe",
			mutate: func(q *collector.StockQuote) { q.PERatio = 45 },
			want:   "High P/E",
		},
		{
			name:   "low pe",
			mutate: func(q *collector.StockQuote) { q.PERatio = 5 },
			want:   "Low P/E",
		},
		{
			name:   "below 52 week high",
			mutate: func(q *collector.StockQuote) { q.CurrentPrice = 100 },
			want:   "below 52-week high",
		},
		{
			name: "near 52 week low",
			mutate: func(q *collector.StockQuote) {
				q.CurrentPrice = 155
				q.High52W = 160
			},
			want: "near 52-week low",
		},
		{
			name: "volume spike",
			mutate: func(q *collector.StockQuote) {
				q.Volume = 3_000_000
			},
			want: "high trading volume",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := calmQuote()
			tc.mutate(quote)

			risks := stockRiskFactors(quote)

			var found bool
			for _, r := range risks {
				if strings.Contains(r, tc.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a factor containing %q, got %v", tc.want, risks)
			}
		})
	}
}

func TestRiskLevelThresholds(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, RiskLevelLow},
		{2, RiskLevelLow},
		{3, RiskLevelModerate},
		{4, RiskLevelModerate},
		{5, RiskLevelHigh},
		{9, RiskLevelHigh},
	}

	for _, tc := range cases {
		if got, _ := riskLevel(tc.count); got != tc.want {
			t.Errorf("riskLevel(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}
