package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/pkg/llm"
)

type Label string

const (
	LabelRelated   Label = Label(constant.IntentLabelRelated)
	LabelUnrelated Label = Label(constant.IntentLabelUnrelated)
)

const classifyTimeout = 10 * time.Second

// Classifier decides whether a question belongs to the scholarship domain.
// It evaluates the question alone, not the conversation history.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewClassifier(llmProvider llm.LLMProvider, logger logger.ILogger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Classify issues one deterministic completion and maps the output to a
// label. Fail-open: anything that is not an exact UNRELATED, including a
// provider error or timeout, counts as RELATED, so format drift never
// rejects a legitimate question.
func (c *Classifier) Classify(ctx context.Context, message string) Label {
	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	prompt := fmt.Sprintf(constant.IntentClassifyPromptV1, message)

	raw, err := c.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		c.logger.Warn("intent", "Classification call failed, treating as RELATED", map[string]interface{}{
			"error": err.Error(),
		})
		return LabelRelated
	}

	label := normalizeLabel(raw)
	if label == LabelUnrelated {
		return LabelUnrelated
	}

	if label != LabelRelated {
		c.logger.Warn("intent", "Unexpected classification output, treating as RELATED", map[string]interface{}{
			"raw": raw,
		})
	}
	return LabelRelated
}

// normalizeLabel absorbs the usual model format drift: surrounding
// whitespace, casing, trailing punctuation, quotes and markdown emphasis.
func normalizeLabel(raw string) Label {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.Trim(s, ".!\"'`* \t\n")
	return Label(s)
}
