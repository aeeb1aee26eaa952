package model

import "time"

// Entry represents a single dream recorded in the agenda.
type Entry struct {
	ID    string
	Title string
	Note  string
	// Date is kept exactly as the client sent it. Formatting for display
	// tolerates unparseable values, so no validation happens on write.
	Date string
	User string
	// Done is reserved. No operation sets or reads it.
	Done      bool
	CreatedAt time.Time
}
