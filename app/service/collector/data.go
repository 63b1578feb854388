package collector

import "time"

type Article struct {
	Headline       string    `json:"headline"`
	Source         string    `json:"source"`
	PublishedAt    time.Time `json:"published_at"`
	Category       string    `json:"category"`
	SentimentScore float64   `json:"sentiment_score"`
	URL            string    `json:"url"`
}

type StockQuote struct {
	Ticker           string    `json:"ticker"`
	CompanyName      string    `json:"company_name"`
	CurrentPrice     float64   `json:"current_price"`
	Currency         string    `json:"currency"`
	DailyChangePct   float64   `json:"daily_change_percent"`
	MonthlyChangePct float64   `json:"monthly_change_percent"`
	High52W          float64   `json:"52_week_high"`
	Low52W           float64   `json:"52_week_low"`
	MarketCap        int64     `json:"market_cap"`
	PERatio          float64   `json:"pe_ratio"`
	Volume           int64     `json:"volume"`
	AvgVolume        int64     `json:"avg_volume"`
	Sector           string    `json:"sector"`
	Industry         string    `json:"industry"`
	LastUpdated      time.Time `json:"last_updated"`
	DataSource       string    `json:"data_source"`
}

var tickerTable = map[string]string{
	"apple":      "AAPL",
	"microsoft":  "MSFT",
	"google":     "GOOGL",
	"alphabet":   "GOOGL",
	"amazon":     "AMZN",
	"meta":       "META",
	"facebook":   "META",
	"tesla":      "TSLA",
	"nvidia":     "NVDA",
	"netflix":    "NFLX",
	"adobe":      "ADBE",
	"salesforce": "CRM",
	"oracle":     "ORCL",
	"intel":      "INTC",
	"amd":        "AMD",
	"ibm":        "IBM",
	"cisco":      "CSCO",
	"uber":       "UBER",
	"airbnb":     "ABNB",
	"spotify":    "SPOT",
}
