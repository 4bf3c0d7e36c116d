package entities

import "time"

// Event is a congregation event. ParticipantCount is denormalized alongside
// ParticipantIDs and must equal len(ParticipantIDs) after every successful
// participation toggle.
type Event struct {
	ID               string
	Title            string
	Description      string
	Date             time.Time // calendar date of the event
	StartTime        string    // time of day, e.g. "19:00"
	EndTime          string
	Location         string
	Address          string
	Category         string
	ImageURL         string
	ParticipantCount int
	ParticipantIDs   []string
	Responsible      []ResponsiblePerson
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ResponsiblePerson is an optional contact in charge of the event.
type ResponsiblePerson struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

// HasParticipant reports whether userID is in the event's participant set.
func (e *Event) HasParticipant(userID string) bool {
	for _, id := range e.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// IsPast reports whether the event date falls strictly before the start of
// now's day. Time-of-day fields are ignored: an event dated today is never
// past.
func (e *Event) IsPast(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return e.Date.Before(today)
}

// EventPatch is a typed partial update for an event. Nil fields are left
// untouched by the store.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	StartTime   *string
	EndTime     *string
	Location    *string
	Address     *string
	Category    *string
	ImageURL    *string
}
