package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"corpintel/app/config"

	"github.com/samber/do"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
		},
	}, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				LongName           string  `json:"longName"`
				Currency           string  `json:"currency"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				FiftyTwoWeekHigh   float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow    float64 `json:"fiftyTwoWeekLow"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type Chart struct {
	Symbol    string
	LongName  string
	Currency  string
	Price     float64
	High52W   float64
	Low52W    float64
	Closes    []float64
	Volumes   []int64
	FetchedAt time.Time
}

// Chart fetches one month of daily closes for a ticker.
func (c *Client) Chart(ctx context.Context, ticker string) (*Chart, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = "/v8/finance/chart/" + ticker

	q := u.Query()
	q.Set("range", "1mo")
	q.Set("interval", "1d")
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("yahoo chart error (status %d): %s", res.StatusCode, string(body))
	}

	var resp chartResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart error: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s", ticker)
	}

	result := resp.Chart.Result[0]
	chart := &Chart{
		Symbol:    result.Meta.Symbol,
		LongName:  result.Meta.LongName,
		Currency:  result.Meta.Currency,
		Price:     result.Meta.RegularMarketPrice,
		High52W:   result.Meta.FiftyTwoWeekHigh,
		Low52W:    result.Meta.FiftyTwoWeekLow,
		FetchedAt: time.Now(),
	}

	if len(result.Indicators.Quote) > 0 {
		quote := result.Indicators.Quote[0]

		// nulls decode as zeros; drop them so change math stays sane
		for i, close := range quote.Close {
			if close <= 0 {
				continue
			}
			chart.Closes = append(chart.Closes, close)
			if i < len(quote.Volume) {
				chart.Volumes = append(chart.Volumes, quote.Volume[i])
			}
		}
	}

	if len(chart.Closes) == 0 {
		return nil, fmt.Errorf("empty chart for %s", ticker)
	}

	return chart, nil
}
