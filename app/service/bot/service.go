package bot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"corpintel/app/client/duckduckgo"
	"corpintel/app/client/wikipedia"
	"corpintel/app/config"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
	"github.com/tmc/langchaingo/tools"
	"golang.org/x/time/rate"
)

const (
	maxReasonDuration = 30 * time.Second
	completionsPerMin = 20
)

var _ do.Shutdownable = (*Service)(nil)

type wikiSource interface {
	Search(ctx context.Context, query string) (*wikipedia.Page, error)
}

type webSource interface {
	Search(ctx context.Context, query string, maxResults int) ([]duckduckgo.Result, error)
	FetchContent(rawURL string) (string, error)
}

type Service struct {
	cfg  *config.Config
	wiki wikiSource
	web  webSource

	client  *openai.Client
	model   string
	limiter *rate.Limiter

	searchTools []tools.Tool
	mcpClients  []*mcpClientWrapper

	mu            sync.RWMutex
	history       History
	currentEntity string
	entityHistory []string
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

	s := &Service{
		cfg:     cfg,
		wiki:    do.MustInvoke[*wikipedia.Client](di),
		web:     do.MustInvoke[*duckduckgo.Client](di),
		client:  client,
		model:   cfg.OpenAI.Model,
		limiter: rate.NewLimiter(rate.Limit(completionsPerMin)/60, 1),
	}
	s.searchTools = s.createSearchTools()

	if err := s.initializeMCPClients(); err != nil {
		return nil, fmt.Errorf("initializeMCPClients: %w", err)
	}

	return s, nil
}

// Chat processes one user message: resolves pronoun context, runs the
// fallback search chain, optionally rewrites the answer through the
// LLM, tracks the discussed entity and appends exactly one turn.
func (s *Service) Chat(ctx context.Context, input string) string {
	resolved := s.resolveQuery(input)

	findings := s.directSearch(ctx, resolved)
	response := findings

	if s.client != nil {
		reply, err := s.generateReply(ctx, resolved, findings)
		if err != nil {
			slog.Warn("LLM reply failed, using direct search answer", "error", err)
		} else if reply != "" {
			response = reply
		}
	}

	s.trackEntity(input, response)

	s.mu.Lock()
	s.history.add(input, response)
	s.mu.Unlock()

	return response
}

// directSearch walks the tool chain in precedence order and returns the
// first non-empty answer.
func (s *Service) directSearch(ctx context.Context, query string) string {
	for _, tool := range s.searchTools {
		result, err := tool.Call(ctx, query)
		if err != nil {
			slog.Debug("Search tool failed",
				"tool", tool.Name(),
				"error", err,
			)
			continue
		}
		if strings.TrimSpace(result) == "" {
			continue
		}

		return fmt.Sprintf("[%s]\n%s", sourceLabel(tool.Name()), result)
	}

	return fmt.Sprintf("I couldn't find specific information about %q. Please try rephrasing your question.", query)
}

func (s *Service) ClearMemory() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.clear()
	s.currentEntity = ""
	s.entityHistory = nil
}

// Turns returns a copy of the conversation history.
func (s *Service) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := make([]Turn, len(s.history.turns))
	copy(turns, s.history.turns)
	return turns
}

func (s *Service) HistoryText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.history.format()
}

func (s *Service) CurrentEntity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentEntity
}

func (s *Service) Shutdown() error {
	for _, wrapper := range s.mcpClients {
		if err := wrapper.client.Close(); err != nil {
			slog.Warn("Failed to close MCP client",
				"name", wrapper.name,
				"error", err,
			)
		}
	}

	return nil
}
