package response

import (
	"regexp"
	"strings"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/pkg/rag/contextbuild"
)

var referenceTagPattern = regexp.MustCompile(`\[ref:announcements ([^\]]+)\]`)

// Finalize appends the source disclaimer and, for internally-grounded
// answers, the machine-readable reference tag. It is idempotent: running it
// twice over its own output changes nothing, so retried turns never stack
// duplicate footers.
func Finalize(text string, sourceType contextbuild.SourceType, citations []string) string {
	out := text

	if !strings.Contains(out, constant.DisclaimerMarker) {
		switch sourceType {
		case contextbuild.SourceInternal:
			out += "\n\n" + constant.DisclaimerInternal
		case contextbuild.SourceExternal:
			out += "\n\n" + constant.DisclaimerExternal
		}
	}

	if sourceType == contextbuild.SourceInternal && len(citations) > 0 &&
		!referenceTagPattern.MatchString(out) {
		out += "\n" + constant.ReferenceTagOpen + strings.Join(citations, ",") + constant.ReferenceTagClose
	}

	return out
}

// ParseReferenceTag extracts the cited announcement ids from a finalized
// answer. It returns nil when no tag is present.
func ParseReferenceTag(text string) []string {
	m := referenceTagPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var ids []string
	for _, id := range strings.Split(m[1], ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// StripReferenceTag removes the reference tag for display surfaces that
// render citations separately.
func StripReferenceTag(text string) string {
	return strings.TrimRight(referenceTagPattern.ReplaceAllString(text, ""), "\n ")
}
