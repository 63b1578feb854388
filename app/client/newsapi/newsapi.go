package newsapi

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

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		apiKey:  cfg.News.APIKey,
		baseURL: cfg.News.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// Configured reports whether a live API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type everythingResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

type Article struct {
	Source      Source    `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

type Source struct {
	Name string `json:"name"`
}

// Everything queries the NewsAPI "everything" endpoint for recent
// articles mentioning the query, newest first.
func (c *Client) Everything(ctx context.Context, query string, pageSize int) ([]Article, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path += "/everything"

	q := u.Query()
	q.Set("q", query)
	q.Set("pageSize", fmt.Sprint(pageSize))
	q.Set("sortBy", "publishedAt")
	q.Set("language", "en")
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("newsapi error (status %d): %s", res.StatusCode, string(body))
	}

	var resp everythingResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}

	if resp.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q", resp.Status)
	}

	return resp.Articles, nil
}
