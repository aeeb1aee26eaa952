// Package httphandler implements the REST API driving adapter.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gomunapp/gomun/internal/application"
	"github.com/gomunapp/gomun/internal/domain/port/driven"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	agendaSvc *application.AgendaService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(agendaSvc *application.AgendaService, logger *slog.Logger) *Handler {
	return &Handler{
		agendaSvc: agendaSvc,
		logger:    logger,
	}
}

// RegisterAPIRoutes registers all REST API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/entries", h.ListEntries)
	mux.HandleFunc("POST /api/v1/entries", h.CreateEntry)
	mux.HandleFunc("PUT /api/v1/entries/{id}", h.UpdateEntry)
	mux.HandleFunc("DELETE /api/v1/entries/{id}", h.DeleteEntry)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// ApplyMiddleware wraps the handler with recovery (innermost, so panics are
// caught before logging) and request logging.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	wrapped := recoveryMiddleware(logger, next)
	return loggingMiddleware(logger, wrapped)
}

// ListEntries returns all entries ordered by creation time descending.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.agendaSvc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list entries", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, toEntryResponse(entry))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateEntry stores a new entry. The title is required; the user tag falls
// back to the configured default when blank.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.agendaSvc.Create(r.Context(), req.Title, req.Note, req.Date, req.User)
	if errors.Is(err, application.ErrTitleRequired) {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if err != nil {
		h.logger.Error("failed to create entry", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// UpdateEntry changes the title and note of an existing entry.
func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.agendaSvc.Update(r.Context(), id, req.Title, req.Note)
	if errors.Is(err, application.ErrTitleRequired) {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if errors.Is(err, driven.ErrEntryNotFound) {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update entry", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

// DeleteEntry removes an entry by id.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.agendaSvc.Delete(r.Context(), id)
	if errors.Is(err, driven.ErrEntryNotFound) {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete entry", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
