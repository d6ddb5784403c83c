package contextbuild

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"scholarship-info-be/internal/entity"
	"scholarship-info-be/pkg/websearch"
)

func TestAssembleInternal(t *testing.T) {
	deadline := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	a1 := &entity.Announcement{
		Id:                  uuid.New(),
		Title:               "STEM Merit Scholarship",
		Summary:             "Full tuition for STEM undergraduates.",
		TargetAudience:      "Undergraduate students",
		ApplicationDeadline: &deadline,
	}
	a2 := &entity.Announcement{
		Id:      uuid.New(),
		Title:   "Community Service Grant",
		Summary: "Grant for volunteers.",
	}

	got := Assemble(SourceInternal, []*entity.Announcement{a1, a2}, nil)

	if got.SourceType != SourceInternal {
		t.Fatalf("SourceType = %q, want %q", got.SourceType, SourceInternal)
	}
	if len(got.ReferencedIds) != 2 {
		t.Fatalf("ReferencedIds length = %d, want 2", len(got.ReferencedIds))
	}
	if got.ReferencedIds[0] != a1.Id.String() || got.ReferencedIds[1] != a2.Id.String() {
		t.Errorf("ReferencedIds do not preserve candidate order: %v", got.ReferencedIds)
	}
	for _, want := range []string{
		"--- ANNOUNCEMENT: STEM Merit Scholarship ---",
		"Application deadline: 2026-10-15",
		"Target audience: Undergraduate students",
		"--- END OF: Community Service Grant ---",
	} {
		if !strings.Contains(got.Body, want) {
			t.Errorf("Body missing %q", want)
		}
	}
	// Blank fields render a placeholder instead of an empty line
	if !strings.Contains(got.Body, "Submission method: Not specified") {
		t.Errorf("Body should mark missing fields as Not specified")
	}
}

func TestAssembleExternal(t *testing.T) {
	results := []websearch.Result{
		{Title: "University Aid Page", Link: "https://example.edu/aid", Snippet: "Apply by March."},
	}

	got := Assemble(SourceExternal, nil, results)

	if got.SourceType != SourceExternal {
		t.Fatalf("SourceType = %q, want %q", got.SourceType, SourceExternal)
	}
	if got.ReferencedIds != nil {
		t.Errorf("external context must not carry announcement ids, got %v", got.ReferencedIds)
	}
	for _, want := range []string{
		"--- WEB RESULT: University Aid Page ---",
		"Link: https://example.edu/aid",
		"Snippet: Apply by March.",
	} {
		if !strings.Contains(got.Body, want) {
			t.Errorf("Body missing %q", want)
		}
	}
}

func TestAssembleNone(t *testing.T) {
	got := Assemble(SourceNone, nil, nil)

	if got.SourceType != SourceNone {
		t.Fatalf("SourceType = %q, want %q", got.SourceType, SourceNone)
	}
	if got.Body != "" {
		t.Errorf("Body = %q, want empty", got.Body)
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := &entity.Announcement{Id: uuid.New(), Title: "Grant", Summary: "A grant."}

	first := Assemble(SourceInternal, []*entity.Announcement{a}, nil)
	second := Assemble(SourceInternal, []*entity.Announcement{a}, nil)

	if first.Body != second.Body {
		t.Errorf("same input produced different bodies")
	}
}
