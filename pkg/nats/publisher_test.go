package nats

import (
	"strings"
	"testing"

	"scholarship-info-be/pkg/events"
)

func TestSubjectFor(t *testing.T) {
	tests := []struct {
		eventType string
		want      string
	}{
		{events.TypeAnnouncementPublished, "portal.announcement.published"},
		{events.TypeAnnouncementUpdated, "portal.announcement.updated"},
		{events.TypeAnnouncementDeactivated, "portal.announcement.deactivated"},
		{"SOMETHING_NEW", "portal.SOMETHING_NEW"},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			got := SubjectFor(tt.eventType)
			if got != tt.want {
				t.Errorf("SubjectFor(%q) = %q, want %q", tt.eventType, got, tt.want)
			}
			// Every subject must match the stream's subject filter
			if !strings.HasPrefix(got, subjectPrefix+".") {
				t.Errorf("subject %q escapes the %s stream", got, streamName)
			}
		})
	}
}
