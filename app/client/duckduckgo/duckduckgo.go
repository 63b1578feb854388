package duckduckgo

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

	"github.com/go-shiori/go-readability"
	"github.com/samber/do"
)

type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)
	timeout := time.Duration(cfg.Search.TimeoutSeconds) * time.Second

	return &Client{
		baseURL: cfg.Search.DuckDuckGoBaseURL,
		timeout: timeout,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type instantAnswerResponse struct {
	Heading       string         `json:"Heading"`
	AbstractText  string         `json:"AbstractText"`
	AbstractURL   string         `json:"AbstractURL"`
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
}

type relatedTopic struct {
	Text     string `json:"Text"`
	FirstURL string `json:"FirstURL"`
}

type Result struct {
	Title   string
	Snippet string
	URL     string
}

// Search queries the DuckDuckGo instant answer API. The abstract, when
// present, comes first; related topics fill the rest.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("no_html", "1")
	q.Set("skip_disambig", "1")
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("User-Agent", "corpintel/1.0")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("duckduckgo api error (status %d): %s", res.StatusCode, string(body))
	}

	var resp instantAnswerResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}

	var results []Result

	if strings.TrimSpace(resp.AbstractText) != "" {
		results = append(results, Result{
			Title:   resp.Heading,
			Snippet: resp.AbstractText,
			URL:     resp.AbstractURL,
		})
	}

	for _, topic := range resp.RelatedTopics {
		if len(results) >= maxResults {
			break
		}
		if strings.TrimSpace(topic.Text) == "" {
			continue
		}
		results = append(results, Result{
			Title:   topic.Text,
			Snippet: topic.Text,
			URL:     topic.FirstURL,
		})
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no duckduckgo results for %q", query)
	}

	return results, nil
}

// FetchContent pulls the readable body of a result page.
func (c *Client) FetchContent(rawURL string) (string, error) {
	article, err := readability.FromURL(rawURL, c.timeout)
	if err != nil {
		return "", fmt.Errorf("readability fetch failed: %w", err)
	}

	return article.TextContent, nil
}
