package response

import (
	"strings"
	"testing"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/pkg/rag/contextbuild"
)

func TestFinalizeDisclaimers(t *testing.T) {
	tests := []struct {
		name           string
		sourceType     contextbuild.SourceType
		wantDisclaimer string
	}{
		{"internal source", contextbuild.SourceInternal, constant.DisclaimerInternal},
		{"external source", contextbuild.SourceExternal, constant.DisclaimerExternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Finalize("Here is the answer.", tt.sourceType, nil)
			if !strings.Contains(got, tt.wantDisclaimer) {
				t.Errorf("missing disclaimer for %s source:\n%s", tt.sourceType, got)
			}
		})
	}
}

func TestFinalizeNoSourceNoDisclaimer(t *testing.T) {
	got := Finalize("I could not find anything.", contextbuild.SourceNone, nil)
	if strings.Contains(got, constant.DisclaimerMarker) {
		t.Errorf("ungrounded answer must not carry a disclaimer:\n%s", got)
	}
}

func TestFinalizeReferenceTag(t *testing.T) {
	citations := []string{"id-1", "id-2"}

	got := Finalize("Answer.", contextbuild.SourceInternal, citations)
	if !strings.Contains(got, "[ref:announcements id-1,id-2]") {
		t.Errorf("missing reference tag:\n%s", got)
	}

	// External answers never carry the tag even when ids leak through
	got = Finalize("Answer.", contextbuild.SourceExternal, citations)
	if strings.Contains(got, "[ref:announcements") {
		t.Errorf("external answer must not carry a reference tag:\n%s", got)
	}

	// No citations, no tag
	got = Finalize("Answer.", contextbuild.SourceInternal, nil)
	if strings.Contains(got, "[ref:announcements") {
		t.Errorf("answer without citations must not carry a reference tag:\n%s", got)
	}
}

func TestFinalizeIsIdempotent(t *testing.T) {
	citations := []string{"id-1"}

	once := Finalize("Answer.", contextbuild.SourceInternal, citations)
	twice := Finalize(once, contextbuild.SourceInternal, citations)

	if once != twice {
		t.Errorf("second pass changed the output:\nfirst:  %q\nsecond: %q", once, twice)
	}
	if strings.Count(twice, constant.DisclaimerMarker) != 1 {
		t.Errorf("disclaimer duplicated: %q", twice)
	}
	if strings.Count(twice, "[ref:announcements") != 1 {
		t.Errorf("reference tag duplicated: %q", twice)
	}
}

func TestParseReferenceTag(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no tag", "Plain answer.", nil},
		{"single id", "Answer.\n[ref:announcements abc]", []string{"abc"}},
		{"multiple ids", "Answer.\n[ref:announcements a,b, c]", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReferenceTag(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestStripReferenceTag(t *testing.T) {
	text := "Answer.\n[ref:announcements abc]"
	if got := StripReferenceTag(text); got != "Answer." {
		t.Errorf("StripReferenceTag = %q, want %q", got, "Answer.")
	}
}
