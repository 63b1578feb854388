package bot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"corpintel/app/client/duckduckgo"
	"corpintel/app/client/wikipedia"
)

type fakeWiki struct {
	page  *wikipedia.Page
	err   error
	calls int
}

func (f *fakeWiki) Search(_ context.Context, _ string) (*wikipedia.Page, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

type fakeWeb struct {
	results []duckduckgo.Result
	err     error
	body    string
	calls   int
}

func (f *fakeWeb) Search(_ context.Context, _ string, _ int) ([]duckduckgo.Result, error) {
	f.calls++
	return f.results, f.err
}

func (f *fakeWeb) FetchContent(_ string) (string, error) {
	if f.body == "" {
		return "", errors.New("no content")
	}
	return f.body, nil
}

func newTestBot(wiki *fakeWiki, web *fakeWeb) *Service {
	s := &Service{wiki: wiki, web: web}
	s.searchTools = s.createSearchTools()
	return s
}

func TestChatKnowledgeBaseTakesPrecedence(t *testing.T) {
	wiki := &fakeWiki{page: &wikipedia.Page{Title: "OpenAI", Summary: "An AI lab."}}
	web := &fakeWeb{}
	s := newTestBot(wiki, web)

	response := s.Chat(context.Background(), "Who is the CEO of OpenAI?")

	if !strings.Contains(response, "From Knowledge Base") {
		t.Errorf("expected knowledge base answer, got:\n%s", response)
	}
	if !strings.Contains(response, "Sam Altman") {
		t.Errorf("answer missing the CEO name:\n%s", response)
	}
	if wiki.calls != 0 {
		t.Errorf("wikipedia called %d times despite knowledge base hit", wiki.calls)
	}
	if web.calls != 0 {
		t.Errorf("web search called %d times despite knowledge base hit", web.calls)
	}
}

func TestChatFallsBackToWikipedia(t *testing.T) {
	wiki := &fakeWiki{page: &wikipedia.Page{
		Title:   "Quantum computing",
		Summary: "A quantum computer exploits quantum mechanics.",
		URL:     "https://en.wikipedia.org/wiki/Quantum_computing",
	}}
	web := &fakeWeb{}
	s := newTestBot(wiki, web)

	response := s.Chat(context.Background(), "What is quantum computing?")

	if !strings.Contains(response, "From Wikipedia") {
		t.Errorf("expected wikipedia answer, got:\n%s", response)
	}
	if !strings.Contains(response, "Quantum computing") {
		t.Errorf("answer missing the page title:\n%s", response)
	}
	if web.calls != 0 {
		t.Errorf("web search called %d times despite wikipedia hit", web.calls)
	}
}

func TestChatFallsBackToWebSearch(t *testing.T) {
	wiki := &fakeWiki{err: errors.New("wiki down")}
	web := &fakeWeb{results: []duckduckgo.Result{
		{Title: "Latest news", Snippet: strings.Repeat("a long enough snippet ", 10), URL: "https://example.com"},
	}}
	s := newTestBot(wiki, web)

	response := s.Chat(context.Background(), "What happened in the markets today?")

	if !strings.Contains(response, "From Web Search") {
		t.Errorf("expected web search answer, got:\n%s", response)
	}
	if wiki.calls != 1 {
		t.Errorf("wikipedia calls = %d, want 1", wiki.calls)
	}
}

func TestChatFinalFallback(t *testing.T) {
	s := newTestBot(&fakeWiki{err: errors.New("wiki down")}, &fakeWeb{err: errors.New("web down")})

	response := s.Chat(context.Background(), "tell me something obscure")

	if !strings.Contains(response, "couldn't find specific information") {
		t.Errorf("expected canned fallback, got:\n%s", response)
	}
}

func TestChatAppendsExactlyOneTurn(t *testing.T) {
	s := newTestBot(&fakeWiki{err: errors.New("down")}, &fakeWeb{err: errors.New("down")})

	s.Chat(context.Background(), "first question")
	s.Chat(context.Background(), "second question")

	turns := s.Turns()
	if len(turns) != 2 {
		t.Fatalf("history has %d turns, want 2", len(turns))
	}
	if turns[0].User != "first question" || turns[1].User != "second question" {
		t.Errorf("turns recorded out of order: %+v", turns)
	}
}

func TestChatTracksEntityAcrossTurns(t *testing.T) {
	s := newTestBot(&fakeWiki{err: errors.New("down")}, &fakeWeb{err: errors.New("down")})

	s.Chat(context.Background(), "Who is the CEO of Microsoft?")

	if got := s.CurrentEntity(); got != "microsoft" {
		t.Fatalf("current entity = %q, want microsoft", got)
	}

	response := s.Chat(context.Background(), "Where did he study?")

	if !strings.Contains(response, "Satya Nadella") {
		t.Errorf("pronoun follow-up not resolved to the tracked entity:\n%s", response)
	}
}

func TestClearMemory(t *testing.T) {
	s := newTestBot(&fakeWiki{err: errors.New("down")}, &fakeWeb{err: errors.New("down")})

	s.Chat(context.Background(), "Who is the CEO of Apple?")
	s.ClearMemory()

	if len(s.Turns()) != 0 {
		t.Error("history not cleared")
	}
	if s.CurrentEntity() != "" {
		t.Error("entity not cleared")
	}
	if s.HistoryText() != "" {
		t.Error("history text not empty after clear")
	}
}

func TestWebToolAppendsPageBodyForShortSnippets(t *testing.T) {
	web := &fakeWeb{
		results: []duckduckgo.Result{{Title: "Short", Snippet: "tiny", URL: "https://example.com/page"}},
		body:    "The full readable article body.",
	}
	s := newTestBot(&fakeWiki{err: errors.New("down")}, web)

	response := s.Chat(context.Background(), "obscure topic")

	if !strings.Contains(response, "The full readable article body.") {
		t.Errorf("short snippet not enriched with page body:\n%s", response)
	}
}

func TestSourceLabel(t *testing.T) {
	cases := map[string]string{
		toolKnowledgeBase: "From Knowledge Base",
		toolWikipedia:     "From Wikipedia",
		toolWebSearch:     "From Web Search",
		"custom_tool":     "From custom_tool",
	}

	for name, want := range cases {
		if got := sourceLabel(name); got != want {
			t.Errorf("sourceLabel(%q) = %q, want %q", name, got, want)
		}
	}
}
