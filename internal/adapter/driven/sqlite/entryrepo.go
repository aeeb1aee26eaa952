package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gomunapp/gomun/internal/domain/model"
	"github.com/gomunapp/gomun/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.EntryStore = (*EntryRepo)(nil)

// EntryRepo is the SQLite implementation of the EntryStore port interface.
type EntryRepo struct {
	db *DB
}

// NewEntryRepo creates a new EntryRepo backed by the given DB.
func NewEntryRepo(db *DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Create assigns a uuid and UTC creation timestamp, inserts the entry, and
// returns the stored row.
func (r *EntryRepo) Create(ctx context.Context, entry model.Entry) (model.Entry, error) {
	const query = `INSERT INTO entries (id, title, note, date, user, done, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`

	entry.ID = uuid.NewString()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	// Stored as RFC3339 text so scans parse it back; binding a raw
	// time.Time would leave the driver's own rendering in the column.
	entry.CreatedAt = entry.CreatedAt.UTC().Truncate(time.Second)

	_, err := r.db.Writer.ExecContext(ctx, query,
		entry.ID, entry.Title, entry.Note, entry.Date, entry.User, entry.Done,
		entry.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return model.Entry{}, fmt.Errorf("create entry: %w", err)
	}

	return entry, nil
}

// ListAll returns all entries ordered by creation time descending. Rows with
// identical timestamps fall back to id order so the listing is deterministic.
func (r *EntryRepo) ListAll(ctx context.Context) ([]model.Entry, error) {
	const query = `SELECT id, title, note, date, user, done, created_at FROM entries ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// GetByID retrieves an entry by id. Returns nil, nil if the entry does not
// exist.
func (r *EntryRepo) GetByID(ctx context.Context, id string) (*model.Entry, error) {
	const query = `SELECT id, title, note, date, user, done, created_at FROM entries WHERE id = ?`

	entry, err := scanEntry(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", id, err)
	}

	return entry, nil
}

// Update changes title and note of an existing entry. Date, user tag, done,
// and the creation timestamp are never touched. Returns ErrEntryNotFound
// when the id does not match any row.
func (r *EntryRepo) Update(ctx context.Context, id, title, note string) (*model.Entry, error) {
	const query = `UPDATE entries SET title = ?, note = ? WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, title, note, id)
	if err != nil {
		return nil, fmt.Errorf("update entry %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return nil, fmt.Errorf("update entry %s: %w", id, driven.ErrEntryNotFound)
	}

	updated, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Row deleted between the UPDATE and the re-read.
		return nil, fmt.Errorf("update entry %s: %w", id, driven.ErrEntryNotFound)
	}

	return updated, nil
}

// Delete removes an entry by id. Returns ErrEntryNotFound when the id does
// not match any row.
func (r *EntryRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM entries WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete entry %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete entry %s: %w", id, driven.ErrEntryNotFound)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*model.Entry, error) {
	var entry model.Entry
	var createdAt string

	err := s.Scan(&entry.ID, &entry.Title, &entry.Note, &entry.Date, &entry.User, &entry.Done, &createdAt)
	if err != nil {
		return nil, err
	}

	entry.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &entry, nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
