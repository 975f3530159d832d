package model

import (
	"strings"
	"time"
)

// EventContext describes the event a suggestion is generated for.
// It is passed by value and never mutated by the suggestion flows.
type EventContext struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	VenueNeeded    bool       `json:"venue_needed"`
	CateringNeeded bool       `json:"catering_needed"`
	Date           *time.Time `json:"date,omitempty"`
}

// DateText renders the date the way prompts mention it, or "" when unknown.
func (e EventContext) DateText() string {
	if e.Date == nil || e.Date.IsZero() {
		return ""
	}
	return e.Date.Format("Mon Jan 02 2006")
}

// HasLocation reports whether the event carries a usable location.
func (e EventContext) HasLocation() bool {
	return strings.TrimSpace(e.Location) != ""
}

// TaskSuggestion is one generated, not yet persisted, task.
type TaskSuggestion struct {
	Text string `json:"text"`
}
