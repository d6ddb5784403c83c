package events

import "time"

// Event defines the contract for all portal events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ANNOUNCEMENT_PUBLISHED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the canonical Event implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes emitted by the announcement admin surface.
const (
	TypeAnnouncementPublished   = "ANNOUNCEMENT_PUBLISHED"
	TypeAnnouncementUpdated     = "ANNOUNCEMENT_UPDATED"
	TypeAnnouncementDeactivated = "ANNOUNCEMENT_DEACTIVATED"
)

func NewAnnouncementEvent(eventType, announcementId, title string) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"announcement_id": announcementId,
			"title":           title,
		},
		OccurredAt: time.Now(),
	}
}
