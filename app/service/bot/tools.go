package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/tools"
)

const (
	toolKnowledgeBase = "knowledge_base_lookup"
	toolWikipedia     = "wikipedia_search"
	toolWebSearch     = "web_search"
)

const fetchedBodyLimit = 1000

type agentTool struct {
	name        string
	description string
	call        func(ctx context.Context, input string) (string, error)
}

func (m *agentTool) Name() string {
	return m.name
}

func (m *agentTool) Description() string {
	return m.description
}

func (m *agentTool) Call(ctx context.Context, input string) (string, error) {
	return m.call(ctx, input)
}

// createSearchTools builds the fallback chain in precedence order:
// knowledge base, then Wikipedia, then web search.
func (s *Service) createSearchTools() []tools.Tool {
	return []tools.Tool{
		&agentTool{
			name:        toolKnowledgeBase,
			description: "Look up well-known facts (company CEOs, their education and birth years) in the static knowledge base. Input is a free-text question.",
			call: func(_ context.Context, input string) (string, error) {
				return searchKnowledgeBase(input), nil
			},
		},
		&agentTool{
			name:        toolWikipedia,
			description: "Search Wikipedia for encyclopedic information: biographies, historical facts, scientific concepts. Input is a free-text query.",
			call: func(ctx context.Context, input string) (string, error) {
				page, err := s.wiki.Search(ctx, input)
				if err != nil {
					return "", fmt.Errorf("wikipedia search: %w", err)
				}

				return fmt.Sprintf("**%s**\n\n%s\n\nSource: %s", page.Title, page.Summary, page.URL), nil
			},
		},
		&agentTool{
			name:        toolWebSearch,
			description: "Search the web for current information on any topic. Input is a free-text query.",
			call: func(ctx context.Context, input string) (string, error) {
				results, err := s.web.Search(ctx, input, 3)
				if err != nil {
					return "", fmt.Errorf("web search: %w", err)
				}

				var parts []string
				for i, result := range results {
					parts = append(parts, fmt.Sprintf("**%d. %s**\n%s\n%s", i+1, result.Title, result.Snippet, result.URL))
				}

				// short snippets get the readable page body appended
				if len(results) > 0 && len(results[0].Snippet) < 200 && results[0].URL != "" {
					if body, err := s.web.FetchContent(results[0].URL); err == nil {
						body = strings.TrimSpace(body)
						if len(body) > fetchedBodyLimit {
							body = body[:fetchedBodyLimit]
						}
						if body != "" {
							parts = append(parts, body)
						}
					}
				}

				return strings.Join(parts, "\n\n"), nil
			},
		},
	}
}

func sourceLabel(toolName string) string {
	switch toolName {
	case toolKnowledgeBase:
		return "From Knowledge Base"
	case toolWikipedia:
		return "From Wikipedia"
	case toolWebSearch:
		return "From Web Search"
	default:
		return "From " + toolName
	}
}
