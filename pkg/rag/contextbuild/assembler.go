package contextbuild

import (
	"fmt"
	"strings"
	"time"

	"scholarship-info-be/internal/entity"
	"scholarship-info-be/pkg/websearch"
)

// SourceType declares where the assembled evidence came from.
type SourceType string

const (
	SourceInternal SourceType = "internal"
	SourceExternal SourceType = "external"
	SourceNone     SourceType = "none"
)

// AssembledContext is the evidence block handed to the answer generator.
// Constructed fresh per request, never cached.
type AssembledContext struct {
	SourceType    SourceType
	Body          string
	ReferencedIds []string
}

// Assemble renders the selected evidence into a labeled text block.
// Pure function, no I/O: given the same inputs it always produces the
// same context.
func Assemble(sourceType SourceType, announcements []*entity.Announcement, results []websearch.Result) AssembledContext {
	switch sourceType {
	case SourceInternal:
		return assembleInternal(announcements)
	case SourceExternal:
		return assembleExternal(results)
	default:
		return AssembledContext{SourceType: SourceNone, Body: ""}
	}
}

func assembleInternal(announcements []*entity.Announcement) AssembledContext {
	var body strings.Builder
	ids := make([]string, 0, len(announcements))

	for _, a := range announcements {
		ids = append(ids, a.Id.String())

		body.WriteString(fmt.Sprintf("--- ANNOUNCEMENT: %s ---\n", a.Title))
		body.WriteString(fmt.Sprintf("Summary: %s\n", a.Summary))
		body.WriteString(fmt.Sprintf("Target audience: %s\n", orUnspecified(a.TargetAudience)))
		body.WriteString(fmt.Sprintf("Application deadline: %s\n", formatDate(a.ApplicationDeadline)))
		body.WriteString(fmt.Sprintf("Announcement end date: %s\n", formatDate(a.AnnouncementEndDate)))
		body.WriteString(fmt.Sprintf("Submission method: %s\n", orUnspecified(a.SubmissionMethod)))
		body.WriteString(fmt.Sprintf("Application limitations: %s\n", orUnspecified(a.ApplicationLimitations)))
		body.WriteString(fmt.Sprintf("--- END OF: %s ---\n\n", a.Title))
	}

	return AssembledContext{
		SourceType:    SourceInternal,
		Body:          strings.TrimRight(body.String(), "\n"),
		ReferencedIds: ids,
	}
}

func assembleExternal(results []websearch.Result) AssembledContext {
	var body strings.Builder

	for _, r := range results {
		body.WriteString(fmt.Sprintf("--- WEB RESULT: %s ---\n", r.Title))
		body.WriteString(fmt.Sprintf("Link: %s\n", r.Link))
		body.WriteString(fmt.Sprintf("Snippet: %s\n", r.Snippet))
		body.WriteString(fmt.Sprintf("--- END OF: %s ---\n\n", r.Title))
	}

	return AssembledContext{
		SourceType: SourceExternal,
		Body:       strings.TrimRight(body.String(), "\n"),
	}
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "Not specified"
	}
	return t.Format("2006-01-02")
}
