package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/pkg/llm"
	"scholarship-info-be/pkg/websearch"
)

// MaxResults caps how many web results feed into the answer context.
const MaxResults = 3

const (
	reformulateTimeout = 10 * time.Second
	searchTimeout      = 8 * time.Second
)

// Searcher runs the external fallback: condense the conversation so far
// plus the current question into a search query, bias it toward
// institutional domains, and keep the first few complete results.
type Searcher struct {
	provider    websearch.Provider
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewSearcher(provider websearch.Provider, llmProvider llm.LLMProvider, logger logger.ILogger) *Searcher {
	return &Searcher{
		provider:    provider,
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Search returns at most MaxResults results that carry a title, link and
// snippet. Failures degrade to an empty slice.
func (s *Searcher) Search(ctx context.Context, question string, history []llm.Message) []websearch.Result {
	query := s.reformulate(ctx, question, history)

	searchCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	results, err := s.provider.Search(searchCtx, query+" "+constant.SearchQuerySiteBias)
	if err != nil {
		s.logger.Warn("search", "Web search failed", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		return nil
	}

	var complete []websearch.Result
	for _, r := range results {
		if strings.TrimSpace(r.Title) == "" ||
			strings.TrimSpace(r.Link) == "" ||
			strings.TrimSpace(r.Snippet) == "" {
			continue
		}
		complete = append(complete, r)
		if len(complete) == MaxResults {
			break
		}
	}
	return complete
}

// reformulate condenses the conversation and the latest question into a
// keyword query. Follow-ups like "what about the deadlines?" only make
// sense with the earlier turns in front of the model. On any failure the
// raw question is used as-is, which a search engine handles well enough.
func (s *Searcher) reformulate(ctx context.Context, question string, history []llm.Message) string {
	ctx, cancel := context.WithTimeout(ctx, reformulateTimeout)
	defer cancel()

	raw, err := s.llmProvider.Generate(ctx,
		fmt.Sprintf(constant.SearchQueryPromptV1, renderConversation(question, history)),
		llm.WithTemperature(0.1),
	)
	if err != nil {
		s.logger.Warn("search", "Query reformulation failed, using raw question", map[string]interface{}{
			"error": err.Error(),
		})
		return question
	}

	query := strings.Trim(strings.TrimSpace(raw), "\"'`")
	if query == "" {
		return question
	}
	return query
}

func renderConversation(question string, history []llm.Message) string {
	var b strings.Builder
	for _, turn := range history {
		b.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
	}
	b.WriteString(fmt.Sprintf("%s: %s", constant.ChatMessageRoleUser, question))
	return b.String()
}
