package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gomunapp/gomun/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// EntryResponse is the JSON representation of an entry.
type EntryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Note      string `json:"note"`
	Date      string `json:"date"`
	User      string `json:"user"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"created_at"`
}

// CreateEntryRequest is the JSON body for the create entry endpoint.
type CreateEntryRequest struct {
	Title string `json:"title"`
	Note  string `json:"note"`
	Date  string `json:"date"`
	User  string `json:"user"`
}

// UpdateEntryRequest is the JSON body for the update entry endpoint. Only
// title and note are mutable.
type UpdateEntryRequest struct {
	Title string `json:"title"`
	Note  string `json:"note"`
}

// HealthResponse is the JSON body of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toEntryResponse converts a domain entry to its JSON representation.
func toEntryResponse(entry model.Entry) EntryResponse {
	return EntryResponse{
		ID:        entry.ID,
		Title:     entry.Title,
		Note:      entry.Note,
		Date:      entry.Date,
		User:      entry.User,
		Done:      entry.Done,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}
