package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/pkg/llm"
	"scholarship-info-be/pkg/rag/contextbuild"
	"scholarship-info-be/pkg/rag/intent"
	"scholarship-info-be/pkg/rag/response"
	"scholarship-info-be/pkg/websearch"
)

type fakeClassifier struct {
	label intent.Label
}

func (f *fakeClassifier) Classify(ctx context.Context, message string) intent.Label {
	return f.label
}

type fakeRetriever struct {
	announcements []*entity.Announcement
	calls         int
}

func (f *fakeRetriever) Retrieve(ctx context.Context, question string) []*entity.Announcement {
	f.calls++
	return f.announcements
}

type fakeSearcher struct {
	results     []websearch.Result
	calls       int
	lastHistory []llm.Message
}

func (f *fakeSearcher) Search(ctx context.Context, question string, history []llm.Message) []websearch.Result {
	f.calls++
	f.lastHistory = history
	return f.results
}

type fakeGenerator struct {
	answer       string
	err          error
	lastAssembly contextbuild.AssembledContext
	calls        int
}

func (f *fakeGenerator) Generate(ctx context.Context, question string, history []llm.Message, assembled contextbuild.AssembledContext) (string, error) {
	f.calls++
	f.lastAssembly = assembled
	return f.answer, f.err
}

type recordedTurn struct {
	role    string
	content string
}

type fakeRecorder struct {
	turns []recordedTurn
}

func (f *fakeRecorder) Record(sessionId string, callerId uuid.UUID, role, content string) {
	f.turns = append(f.turns, recordedTurn{role: role, content: content})
}

func newTestPipeline(c *fakeClassifier, r *fakeRetriever, s *fakeSearcher, g *fakeGenerator, rec *fakeRecorder) *Pipeline {
	return NewPipeline(c, r, s, g, response.Finalize, rec, logger.NewNopLogger())
}

func testRequest() Request {
	return Request{
		Message:   "Are there any STEM scholarships?",
		SessionId: "session-1",
		CallerId:  uuid.New(),
	}
}

func TestExecuteInternalPath(t *testing.T) {
	announcement := &entity.Announcement{Id: uuid.New(), Title: "STEM Grant", Summary: "A grant."}
	retriever := &fakeRetriever{announcements: []*entity.Announcement{announcement}}
	searcher := &fakeSearcher{}
	generator := &fakeGenerator{answer: "STEM Grant is open."}
	recorder := &fakeRecorder{}

	p := newTestPipeline(&fakeClassifier{label: intent.LabelRelated}, retriever, searcher, generator, recorder)
	result, err := p.Execute(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.SourceType != contextbuild.SourceInternal {
		t.Errorf("SourceType = %q, want internal", result.SourceType)
	}
	if searcher.calls != 0 {
		t.Errorf("web search must not run when internal retrieval succeeds")
	}
	if len(result.Citations) != 1 || result.Citations[0] != announcement.Id.String() {
		t.Errorf("Citations = %v, want the selected announcement id", result.Citations)
	}
	if ids := response.ParseReferenceTag(result.Reply); len(ids) != 1 {
		t.Errorf("reply missing reference tag: %q", result.Reply)
	}
	if len(recorder.turns) != 2 {
		t.Fatalf("recorded %d turns, want 2", len(recorder.turns))
	}
	if recorder.turns[0].role != constant.ChatMessageRoleUser || recorder.turns[1].role != constant.ChatMessageRoleAssistant {
		t.Errorf("turn roles = %q, %q", recorder.turns[0].role, recorder.turns[1].role)
	}
	if recorder.turns[1].content != result.Reply {
		t.Errorf("recorded assistant turn must be the finalized reply")
	}
}

func TestExecuteExternalFallback(t *testing.T) {
	searcher := &fakeSearcher{results: []websearch.Result{
		{Title: "Aid Page", Link: "https://example.edu", Snippet: "s"},
	}}
	generator := &fakeGenerator{answer: "See the aid page."}
	recorder := &fakeRecorder{}

	p := newTestPipeline(&fakeClassifier{label: intent.LabelRelated}, &fakeRetriever{}, searcher, generator, recorder)
	req := testRequest()
	req.History = []llm.Message{{Role: "user", Content: "Tell me about nursing scholarships"}}
	result, err := p.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.SourceType != contextbuild.SourceExternal {
		t.Errorf("SourceType = %q, want external", result.SourceType)
	}
	if searcher.calls != 1 {
		t.Errorf("web search should run once, ran %d times", searcher.calls)
	}
	// The searcher condenses the whole conversation, not just the message
	if len(searcher.lastHistory) != 1 || searcher.lastHistory[0].Content != req.History[0].Content {
		t.Errorf("searcher did not receive the conversation history: %+v", searcher.lastHistory)
	}
	if len(result.Citations) != 0 {
		t.Errorf("external answers carry no citations, got %v", result.Citations)
	}
}

func TestExecuteNoEvidence(t *testing.T) {
	generator := &fakeGenerator{answer: "I could not find any relevant scholarship information for your question."}

	p := newTestPipeline(&fakeClassifier{label: intent.LabelRelated}, &fakeRetriever{}, &fakeSearcher{}, generator, &fakeRecorder{})
	result, err := p.Execute(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.SourceType != contextbuild.SourceNone {
		t.Errorf("SourceType = %q, want none", result.SourceType)
	}
	if generator.lastAssembly.SourceType != contextbuild.SourceNone {
		t.Errorf("generator must still run with an empty context")
	}
}

func TestExecuteUnrelatedShortCircuits(t *testing.T) {
	retriever := &fakeRetriever{}
	generator := &fakeGenerator{answer: "should not be used"}
	recorder := &fakeRecorder{}

	p := newTestPipeline(&fakeClassifier{label: intent.LabelUnrelated}, retriever, &fakeSearcher{}, generator, recorder)
	result, err := p.Execute(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Reply != constant.RejectionMessageV1 {
		t.Errorf("Reply = %q, want the rejection message", result.Reply)
	}
	if retriever.calls != 0 || generator.calls != 0 {
		t.Errorf("rejected turns must not reach retrieval or generation")
	}
	// Rejected turns are still part of the conversation record
	if len(recorder.turns) != 2 {
		t.Fatalf("recorded %d turns, want 2", len(recorder.turns))
	}
	if recorder.turns[1].content != constant.RejectionMessageV1 {
		t.Errorf("assistant turn should be the rejection message")
	}
}

func TestExecuteGenerationFailureIsFatal(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("model unavailable")}
	recorder := &fakeRecorder{}

	p := newTestPipeline(&fakeClassifier{label: intent.LabelRelated}, &fakeRetriever{}, &fakeSearcher{}, generator, recorder)
	_, err := p.Execute(context.Background(), testRequest())

	if !errors.Is(err, ErrGenerateFailed) {
		t.Fatalf("Execute() error = %v, want ErrGenerateFailed", err)
	}
	if len(recorder.turns) != 0 {
		t.Errorf("failed turns must not be recorded, got %d", len(recorder.turns))
	}
}

func TestFailurePolicies(t *testing.T) {
	if PolicyFor(StateGenerate) != Fatal {
		t.Errorf("generation must be the fatal stage")
	}
	for _, state := range []State{StateClassify, StateRetrieveInternal, StateSearchExternal, StateAssemble, StatePostprocess, StatePersist} {
		if PolicyFor(state) != Degrade {
			t.Errorf("stage %s must degrade, not abort", state)
		}
	}
}
