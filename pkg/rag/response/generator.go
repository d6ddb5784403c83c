package response

import (
	"context"
	"fmt"
	"time"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/pkg/llm"
	"scholarship-info-be/pkg/rag/contextbuild"
)

const generateTimeout = 60 * time.Second

// Generator produces the final answer from the conversation and the
// assembled reference material. A failure here is fatal for the turn;
// there is no degraded mode past this point.
type Generator struct {
	llmProvider llm.LLMProvider
}

func NewGenerator(llmProvider llm.LLMProvider) *Generator {
	return &Generator{llmProvider: llmProvider}
}

func (g *Generator) Generate(ctx context.Context, question string, history []llm.Message, assembled contextbuild.AssembledContext) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: constant.AssistantPersonaPromptV1,
	})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: buildUserPrompt(question, assembled),
	})

	answer, err := g.llmProvider.Chat(ctx, messages, llm.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}
	return answer, nil
}

func buildUserPrompt(question string, assembled contextbuild.AssembledContext) string {
	if assembled.SourceType == contextbuild.SourceNone {
		return fmt.Sprintf("REFERENCE MATERIAL:\n(none found)\n\nQUESTION:\n%s", question)
	}
	return fmt.Sprintf("REFERENCE MATERIAL:\n%s\n\nQUESTION:\n%s", assembled.Body, question)
}
