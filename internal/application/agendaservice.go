// Package application holds the agenda view engine and the services that
// sit between the driving adapters and the persistence ports.
package application

import (
	"context"
	"errors"
	"strings"

	"github.com/gomunapp/gomun/internal/domain/model"
	"github.com/gomunapp/gomun/internal/domain/port/driven"
)

// ErrTitleRequired is returned when a create or update carries a blank title.
var ErrTitleRequired = errors.New("title is required")

// AgendaService validates and defaults inbound entry fields before handing
// them to the EntryStore. It depends only on the port interface.
type AgendaService struct {
	entries     driven.EntryStore
	defaultUser string
}

// NewAgendaService creates an AgendaService with the required dependencies.
// defaultUser is the configured fallback user tag applied when an entry is
// created without an explicit one.
func NewAgendaService(entries driven.EntryStore, defaultUser string) *AgendaService {
	return &AgendaService{
		entries:     entries,
		defaultUser: defaultUser,
	}
}

// List returns all entries in store order (creation time descending).
func (s *AgendaService) List(ctx context.Context) ([]model.Entry, error) {
	return s.entries.ListAll(ctx)
}

// Create validates the title, resolves the user tag, and stores a new entry.
// User tag resolution order: explicit value trimmed and non-empty, else the
// configured default. The date passes through untouched; the agenda engine
// tolerates unparseable values downstream.
func (s *AgendaService) Create(ctx context.Context, title, note, date, user string) (model.Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Entry{}, ErrTitleRequired
	}

	resolvedUser := strings.TrimSpace(user)
	if resolvedUser == "" {
		resolvedUser = s.defaultUser
	}

	return s.entries.Create(ctx, model.Entry{
		Title: title,
		Note:  note,
		Date:  date,
		User:  resolvedUser,
	})
}

// Update validates the title and changes title and note of an existing
// entry. Returns driven.ErrEntryNotFound (wrapped) when the id is unknown.
func (s *AgendaService) Update(ctx context.Context, id, title, note string) (*model.Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	return s.entries.Update(ctx, id, title, note)
}

// Delete removes an entry. Returns driven.ErrEntryNotFound (wrapped) when
// the id is unknown.
func (s *AgendaService) Delete(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}
