package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/pkg/llm"
)

// SelectionThreshold is the minimum relevance score an announcement must
// reach to be included in the answer context. Scores run 0-10.
const SelectionThreshold = 7

const scoreTimeout = 20 * time.Second

// AnnouncementSource abstracts the candidate pool. The service layer adapts
// the announcement repository to it so the retriever stays storage-agnostic.
type AnnouncementSource interface {
	FindActive(ctx context.Context) ([]*entity.Announcement, error)
}

// Retriever scores every active announcement against the question with a
// single LLM call and keeps those at or above the threshold.
type Retriever struct {
	source      AnnouncementSource
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewRetriever(source AnnouncementSource, llmProvider llm.LLMProvider, logger logger.ILogger) *Retriever {
	return &Retriever{
		source:      source,
		llmProvider: llmProvider,
		logger:      logger,
	}
}

type relevanceScore struct {
	Id    string `json:"id"`
	Score int    `json:"score"`
}

// Retrieve returns the selected announcements in their original candidate
// order. Every failure mode (empty pool, LLM error, unparseable output)
// degrades to an empty result so the caller can fall back to web search.
func (r *Retriever) Retrieve(ctx context.Context, question string) []*entity.Announcement {
	candidates, err := r.source.FindActive(ctx)
	if err != nil {
		r.logger.Warn("retrieval", "Failed to load active announcements", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, scoreTimeout)
	defer cancel()

	prompt := fmt.Sprintf(constant.RelevanceScorePromptV1, question, buildDigest(candidates))

	raw, err := r.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.0),
		llm.WithJSONOutput(),
	)
	if err != nil {
		r.logger.Warn("retrieval", "Relevance scoring call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	scores, err := parseScores(raw)
	if err != nil {
		r.logger.Warn("retrieval", "Could not parse relevance scores", map[string]interface{}{
			"error": err.Error(),
			"raw":   raw,
		})
		return nil
	}

	byId := make(map[string]int, len(scores))
	for _, s := range scores {
		byId[s.Id] = s.Score
	}

	var selected []*entity.Announcement
	for _, c := range candidates {
		if byId[c.Id.String()] >= SelectionThreshold {
			selected = append(selected, c)
		}
	}
	return selected
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// buildDigest renders a compact one-block-per-candidate listing. Summaries
// are stripped of markup so the scoring prompt stays small and uniform.
func buildDigest(candidates []*entity.Announcement) string {
	var b strings.Builder
	for _, c := range candidates {
		b.WriteString(fmt.Sprintf("id: %s\ntitle: %s\nsummary: %s\n\n",
			c.Id.String(), c.Title, tagPattern.ReplaceAllString(c.Summary, "")))
	}
	return b.String()
}

// parseScores tolerates prose around the JSON array by slicing from the
// first '[' to the last ']' before unmarshalling.
func parseScores(raw string) ([]relevanceScore, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in model output")
	}

	var scores []relevanceScore
	if err := json.Unmarshal([]byte(raw[start:end+1]), &scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	return scores, nil
}
