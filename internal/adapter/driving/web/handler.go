// Package web implements the browser client driving adapter: an embedded
// static page plus the JSON agenda view endpoint it renders from.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gomunapp/gomun/internal/application"
)

// Handler is the web driving adapter serving the embedded client and the
// computed agenda view.
type Handler struct {
	agendaSvc *application.AgendaService
	pageSize  int
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(agendaSvc *application.AgendaService, pageSize int, logger *slog.Logger) *Handler {
	if pageSize < 1 {
		pageSize = application.DefaultPageSize
	}
	return &Handler{
		agendaSvc: agendaSvc,
		pageSize:  pageSize,
		logger:    logger,
	}
}

// Index serves the embedded client page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data, err := StaticFS.ReadFile("static/index.html")
	if err != nil {
		h.logger.Error("failed to read index page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

// AgendaView computes the grouped, sorted, filtered, paginated agenda and
// returns it as JSON. Query params: q (free-text search), page (repeated
// "K:N" pairs, the client's per-letter page positions). Returned page
// numbers are clamped into the valid range for each letter.
func (h *Handler) AgendaView(w http.ResponseWriter, r *http.Request) {
	entries, err := h.agendaSvc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list entries for agenda view", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	query := application.NormalizeQuery(r.URL.Query().Get("q"))
	pages := parsePageParams(r.URL.Query()["page"])

	sections := application.BuildSections(entries, query, pages, h.pageSize)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(toAgendaViewModel(sections, query)); err != nil {
		h.logger.Error("failed to encode agenda view", "error", err)
	}
}

// parsePageParams parses repeated "K:N" page parameters into a per-letter
// page map. Malformed pairs are skipped; clamping happens in the engine.
func parsePageParams(params []string) map[string]int {
	pages := make(map[string]int, len(params))
	for _, param := range params {
		key, value, ok := strings.Cut(param, ":")
		if !ok || key == "" {
			continue
		}
		page, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		pages[key] = page
	}
	return pages
}
