package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"corpintel/app/config"

	"github.com/samber/do"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		baseURL: cfg.Search.WikipediaBaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
		},
	}, nil
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type summaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

type Page struct {
	Title   string
	Summary string
	URL     string
}

// Search finds the best-matching article for a query and returns its
// lead-section summary.
func (c *Client) Search(ctx context.Context, query string) (*Page, error) {
	titles, err := c.searchTitles(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("no wikipedia results for %q", query)
	}

	var lastErr error
	for _, title := range titles {
		page, err := c.summary(ctx, title)
		if err != nil {
			lastErr = err
			continue
		}
		return page, nil
	}

	return nil, fmt.Errorf("no wikipedia summary for %q: %w", query, lastErr)
}

func (c *Client) searchTitles(ctx context.Context, query string) ([]string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = "/w/api.php"

	q := u.Query()
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("srsearch", query)
	q.Set("srlimit", "3")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var resp searchResponse
	if err := c.getJSON(ctx, u.String(), &resp); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, item := range resp.Query.Search {
		titles = append(titles, item.Title)
	}

	return titles, nil
}

func (c *Client) summary(ctx context.Context, title string) (*Page, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = "/api/rest_v1/page/summary/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))

	var resp summaryResponse
	if err := c.getJSON(ctx, u.String(), &resp); err != nil {
		return nil, err
	}

	if strings.TrimSpace(resp.Extract) == "" {
		return nil, fmt.Errorf("empty summary for %q", title)
	}

	return &Page{
		Title:   resp.Title,
		Summary: resp.Extract,
		URL:     resp.ContentURLs.Desktop.Page,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("User-Agent", "corpintel/1.0")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("wikipedia api error (status %d): %s", res.StatusCode, string(body))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response failed: %w", err)
	}

	return nil
}
