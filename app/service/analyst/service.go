package analyst

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"corpintel/app/config"
	"corpintel/app/service/collector"

	_ "embed"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

//go:embed summary_prompt_template.txt
var summaryPromptTemplate string

const (
	maxReasonDuration = 30 * time.Second
	completionsPerMin = 20
)

type Service struct {
	cfg     *config.Config
	client  *openai.Client
	model   string
	limiter *rate.Limiter
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	var client *openai.Client
	if cfg.OpenAI.Token != "" {
		clientConfig := openai.DefaultConfig(cfg.OpenAI.Token)
		clientConfig.BaseURL = cfg.OpenAI.BaseURL
		clientConfig.HTTPClient = &http.Client{
			Timeout: 30 * time.Second,
		}
		client = openai.NewClientWithConfig(clientConfig)
	}

	return &Service{
		cfg:     cfg,
		client:  client,
		model:   cfg.OpenAI.Model,
		limiter: rate.NewLimiter(rate.Limit(completionsPerMin)/60, 1),
	}, nil
}

// Analyze produces a market summary and a risk assessment. The summary
// is LLM-backed when a token is configured; any failure falls back to
// the deterministic template, so Analyze never fails.
func (s *Service) Analyze(ctx context.Context, company string, articles []collector.Article, quote *collector.StockQuote) *Analysis {
	newsSummary := FormatNewsSummary(articles)
	stockSummary := FormatStockSummary(quote)

	summary := ""
	if s.client != nil {
		generated, err := s.generateSummary(ctx, company, newsSummary, stockSummary)
		if err != nil {
			slog.Warn("LLM summary failed, using template summary",
				"company", company,
				"error", err,
			)
		} else {
			summary = generated
		}
	}

	if summary == "" {
		summary = templateSummary(company, newsSummary, stockSummary)
	}

	return &Analysis{
		Summary: summary,
		Risk:    AssessRisks(articles, quote),
	}
}

func (s *Service) generateSummary(ctx context.Context, company, newsSummary, stockSummary string) (string, error) {
	templateValues := map[string]any{
		"company": company,
		"news":    newsSummary,
		"stock":   stockSummary,
	}

	prompt := summaryPromptTemplate
	for key, value := range templateValues {
		prompt = strings.ReplaceAll(prompt, "{"+key+"}", fmt.Sprint(value))
	}

	ctx, cancel := context.WithTimeout(ctx, maxReasonDuration)
	defer cancel()

	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	aiResponse, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxCompletionTokens: 1000,
			Temperature:         0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return "", fmt.Errorf("no chat completion found")
	}

	return strings.TrimSpace(aiResponse.Choices[0].Message.Content), nil
}

func templateSummary(company, newsSummary, stockSummary string) string {
	return strings.TrimSpace(fmt.Sprintf(`## Market Summary for %[1]s

### Overview
This analysis provides a comprehensive view of %[1]s's current market position
based on recent news coverage and stock performance data.

### Recent News Highlights
%[2]s

### Stock Performance
%[3]s

### Key Takeaways
Based on the available data, here are the key observations:

1. **Market Position**: %[1]s is actively covered in financial news,
   indicating significant market interest and activity.

2. **Price Action**: The stock's recent performance should be evaluated in the
   context of broader market conditions and sector trends.

3. **News Sentiment**: Recent headlines provide insights into the company's
   strategic direction and market perception.

*Note: This summary is generated for informational purposes only and should not
be considered as financial advice. Always conduct thorough research and consult
with financial professionals before making investment decisions.*`,
		company, newsSummary, stockSummary))
}
