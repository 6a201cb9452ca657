// Package entities contains core business entities.
package entities

// EventType enumerates calendar event kinds. Values are canonical lowercase;
// the wire boundary normalizes casing.
type EventType string

const (
	// EventMeeting is a regular meeting.
	EventMeeting EventType = "meeting"
	// EventReview is a review session.
	EventReview EventType = "review"
	// EventPlanning is a planning session.
	EventPlanning EventType = "planning"
	// EventWorkshop is a workshop.
	EventWorkshop EventType = "workshop"
	// EventGeneral is a generic event.
	EventGeneral EventType = "event"
	// EventDeadline marks a due date.
	EventDeadline EventType = "deadline"
)

// Event is a confirmed calendar entry.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        string // ISO date, YYYY-MM-DD
	Time        string // HH:MM
	Duration    int    // minutes
	Type        EventType
	Attendees   []string // display names
	Location    string
	Color       string // presentation hint only
}

// EntityID implements the store key.
func (e Event) EntityID() string { return e.ID }

// PendingEvent is a request for an event awaiting approval.
// It becomes an Event on approve or is discarded on reject.
type PendingEvent struct {
	ID          string
	Title       string
	Description string
	Date        string
	Time        string
	Duration    int
	Type        EventType
	RequestedBy string
	Attendees   []string
}

// EntityID implements the store key.
func (p PendingEvent) EntityID() string { return p.ID }
