package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/pkg/llm"
	"scholarship-info-be/pkg/websearch"
)

type fakeLLM struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

type fakeProvider struct {
	results   []websearch.Result
	err       error
	lastQuery string
}

func (f *fakeProvider) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	f.lastQuery = query
	return f.results, f.err
}

func result(title string) websearch.Result {
	return websearch.Result{Title: title, Link: "https://example.edu/" + title, Snippet: "snippet"}
}

func TestSearchCapsResults(t *testing.T) {
	provider := &fakeProvider{results: []websearch.Result{
		result("a"), result("b"), result("c"), result("d"), result("e"),
	}}
	s := NewSearcher(provider, &fakeLLM{response: "scholarship deadlines"}, logger.NewNopLogger())

	got := s.Search(context.Background(), "when are deadlines?", nil)

	if len(got) != MaxResults {
		t.Fatalf("got %d results, want %d", len(got), MaxResults)
	}
	if got[0].Title != "a" || got[2].Title != "c" {
		t.Errorf("cap must keep the first complete results in order")
	}
}

func TestSearchFiltersIncompleteBeforeCap(t *testing.T) {
	provider := &fakeProvider{results: []websearch.Result{
		{Title: "no link", Snippet: "s"},
		{Link: "https://example.edu", Snippet: "no title"},
		{Title: "no snippet", Link: "https://example.edu"},
		{Title: "  ", Link: "https://example.edu", Snippet: "blank title"},
		result("complete-1"),
		result("complete-2"),
		result("complete-3"),
		result("complete-4"),
	}}
	s := NewSearcher(provider, &fakeLLM{response: "query"}, logger.NewNopLogger())

	got := s.Search(context.Background(), "q", nil)

	if len(got) != MaxResults {
		t.Fatalf("got %d results, want %d", len(got), MaxResults)
	}
	// Incomplete entries are dropped before the cap, not counted against it
	if got[0].Title != "complete-1" || got[2].Title != "complete-3" {
		t.Errorf("incomplete entries consumed cap slots: %+v", got)
	}
}

func TestSearchAppendsSiteBias(t *testing.T) {
	provider := &fakeProvider{}
	s := NewSearcher(provider, &fakeLLM{response: "merit scholarships 2026"}, logger.NewNopLogger())

	s.Search(context.Background(), "q", nil)

	if !strings.HasSuffix(provider.lastQuery, constant.SearchQuerySiteBias) {
		t.Errorf("query %q missing site bias suffix", provider.lastQuery)
	}
	if !strings.HasPrefix(provider.lastQuery, "merit scholarships 2026") {
		t.Errorf("query %q should start with the reformulated terms", provider.lastQuery)
	}
}

func TestSearchReformulatesOverConversation(t *testing.T) {
	provider := &fakeProvider{}
	model := &fakeLLM{response: "nursing scholarship ohio deadlines"}
	s := NewSearcher(provider, model, logger.NewNopLogger())

	history := []llm.Message{
		{Role: "user", Content: "Tell me about nursing scholarships in Ohio"},
		{Role: "assistant", Content: "There are several programs for nursing students in Ohio."},
	}
	s.Search(context.Background(), "what about the deadlines?", history)

	// A follow-up question alone is meaningless; the condensation prompt
	// must carry the earlier turns as well.
	for _, want := range []string{
		"user: Tell me about nursing scholarships in Ohio",
		"assistant: There are several programs for nursing students in Ohio.",
		"user: what about the deadlines?",
	} {
		if !strings.Contains(model.lastPrompt, want) {
			t.Errorf("reformulation prompt missing %q:\n%s", want, model.lastPrompt)
		}
	}
}

func TestSearchUsesRawQuestionWhenReformulationFails(t *testing.T) {
	provider := &fakeProvider{}
	s := NewSearcher(provider, &fakeLLM{err: errors.New("model unavailable")}, logger.NewNopLogger())

	s.Search(context.Background(), "what scholarships exist?", nil)

	if !strings.HasPrefix(provider.lastQuery, "what scholarships exist?") {
		t.Errorf("query %q should fall back to the raw question", provider.lastQuery)
	}
}

func TestSearchDegradesOnProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	s := NewSearcher(provider, &fakeLLM{response: "query"}, logger.NewNopLogger())

	if got := s.Search(context.Background(), "q", nil); got != nil {
		t.Errorf("provider failure must yield nil, got %v", got)
	}
}
