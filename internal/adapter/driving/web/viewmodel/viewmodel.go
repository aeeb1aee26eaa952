// Package viewmodel defines presentation-ready structs for the browser
// client. View models decouple the rendered agenda from domain model types.
package viewmodel

// EntryViewModel holds presentation-ready data for one entry row.
type EntryViewModel struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Note         string `json:"note"`
	NoteHTML     string `json:"note_html"`
	Date         string `json:"date"`
	DateLabel    string `json:"date_label"`
	User         string `json:"user"`
	CreatedLabel string `json:"created_label"`
}

// SectionViewModel holds one alphabetical group of the agenda view.
type SectionViewModel struct {
	Key        string           `json:"key"`
	Entries    []EntryViewModel `json:"entries"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Total      int              `json:"total"`
}

// AgendaViewModel holds all data needed to render the agenda page: the
// ordered sections, the normalized query they were filtered by, and the
// applied (clamped) per-letter page map the client should adopt.
type AgendaViewModel struct {
	Query    string             `json:"query"`
	Sections []SectionViewModel `json:"sections"`
	Pages    map[string]int     `json:"pages"`
}
