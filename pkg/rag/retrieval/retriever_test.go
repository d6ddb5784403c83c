package retrieval

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/pkg/llm"
)

type fakeSource struct {
	announcements []*entity.Announcement
	err           error
}

func (f *fakeSource) FindActive(ctx context.Context) ([]*entity.Announcement, error) {
	return f.announcements, f.err
}

type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func makeAnnouncements(n int) []*entity.Announcement {
	out := make([]*entity.Announcement, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entity.Announcement{
			Id:      uuid.New(),
			Title:   fmt.Sprintf("Scholarship %d", i),
			Summary: "A scholarship.",
		})
	}
	return out
}

func TestRetrieveThresholdBoundary(t *testing.T) {
	candidates := makeAnnouncements(3)
	scores := fmt.Sprintf(`[{"id":%q,"score":7},{"id":%q,"score":6},{"id":%q,"score":10}]`,
		candidates[0].Id, candidates[1].Id, candidates[2].Id)

	r := NewRetriever(&fakeSource{announcements: candidates}, &fakeLLM{response: scores}, logger.NewNopLogger())

	got := r.Retrieve(context.Background(), "stem scholarships?")

	if len(got) != 2 {
		t.Fatalf("selected %d announcements, want 2 (score 7 and 10)", len(got))
	}
	// Candidate order is preserved, not score order
	if got[0].Id != candidates[0].Id || got[1].Id != candidates[2].Id {
		t.Errorf("selection did not preserve candidate order")
	}
}

func TestRetrieveToleratesProseAroundJSON(t *testing.T) {
	candidates := makeAnnouncements(1)
	wrapped := fmt.Sprintf("Sure! Here are the scores:\n```json\n[{\"id\":%q,\"score\":9}]\n```", candidates[0].Id)

	r := NewRetriever(&fakeSource{announcements: candidates}, &fakeLLM{response: wrapped}, logger.NewNopLogger())

	if got := r.Retrieve(context.Background(), "q"); len(got) != 1 {
		t.Errorf("selected %d announcements, want 1", len(got))
	}
}

func TestRetrieveDegradesOnUnparseableOutput(t *testing.T) {
	r := NewRetriever(
		&fakeSource{announcements: makeAnnouncements(2)},
		&fakeLLM{response: "I cannot score these."},
		logger.NewNopLogger(),
	)

	if got := r.Retrieve(context.Background(), "q"); got != nil {
		t.Errorf("unparseable output must yield nil, got %d announcements", len(got))
	}
}

func TestRetrieveDegradesOnLLMError(t *testing.T) {
	r := NewRetriever(
		&fakeSource{announcements: makeAnnouncements(2)},
		&fakeLLM{err: errors.New("model unavailable")},
		logger.NewNopLogger(),
	)

	if got := r.Retrieve(context.Background(), "q"); got != nil {
		t.Errorf("LLM failure must yield nil, got %d announcements", len(got))
	}
}

func TestRetrieveEmptyPoolSkipsScoring(t *testing.T) {
	provider := &fakeLLM{response: "[]"}
	r := NewRetriever(&fakeSource{}, provider, logger.NewNopLogger())

	if got := r.Retrieve(context.Background(), "q"); got != nil {
		t.Errorf("empty pool must yield nil, got %v", got)
	}
	if provider.calls != 0 {
		t.Errorf("scoring must not run when there are no candidates, got %d calls", provider.calls)
	}
}

func TestRetrieveDegradesOnSourceError(t *testing.T) {
	r := NewRetriever(
		&fakeSource{err: errors.New("db down")},
		&fakeLLM{response: "[]"},
		logger.NewNopLogger(),
	)

	if got := r.Retrieve(context.Background(), "q"); got != nil {
		t.Errorf("source failure must yield nil, got %v", got)
	}
}
