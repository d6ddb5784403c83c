package intent

import (
	"context"
	"errors"
	"testing"

	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/pkg/llm"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.response, f.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     Label
	}{
		{"related", "RELATED", nil, LabelRelated},
		{"unrelated", "UNRELATED", nil, LabelUnrelated},
		{"lowercase", "unrelated", nil, LabelUnrelated},
		{"trailing period", "UNRELATED.", nil, LabelUnrelated},
		{"surrounding whitespace", "  UNRELATED \n", nil, LabelUnrelated},
		{"quoted", `"UNRELATED"`, nil, LabelUnrelated},
		{"markdown emphasis", "**UNRELATED**", nil, LabelUnrelated},
		// Fail-open: anything that is not an exact UNRELATED counts as related
		{"garbage output", "I think this question is about cooking", nil, LabelRelated},
		{"empty output", "", nil, LabelRelated},
		{"provider error", "", errors.New("model unavailable"), LabelRelated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(&fakeLLM{response: tt.response, err: tt.err}, logger.NewNopLogger())
			if got := c.Classify(context.Background(), "some question"); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
