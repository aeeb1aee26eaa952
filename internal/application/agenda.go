package application

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gomunapp/gomun/internal/domain/model"
)

// CatchAllKey is the section bucket for entries whose title does not start
// with a Latin letter (including empty and whitespace-only titles). It
// collates before "A", so the bucket renders first.
const CatchAllKey = "#"

// DefaultPageSize is the reference page size for agenda sections.
const DefaultPageSize = 5

// Section is one alphabetical group of the agenda view: a letter key, the
// entries visible on the current page, and that key's pagination state.
type Section struct {
	Key        string
	Entries    []model.Entry
	Page       int
	TotalPages int
	Total      int
}

// newCollator returns a locale-aware, case-insensitive collator. A fresh
// instance per computation because collate.Collator carries internal
// iteration buffers and is not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// LetterKey derives the section key for a title: trim, take the first rune,
// uppercase it. Runes outside A-Z (and empty titles) map to CatchAllKey.
// Total over any input.
func LetterKey(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return CatchAllKey
	}

	first, _ := utf8.DecodeRuneInString(trimmed)
	first = unicode.ToUpper(first)
	if first >= 'A' && first <= 'Z' {
		return string(first)
	}

	return CatchAllKey
}

// GroupByLetter partitions entries into letter-key buckets. Order within a
// bucket is the input order; BuildSections re-sorts each bucket by title.
func GroupByLetter(entries []model.Entry) map[string][]model.Entry {
	groups := make(map[string][]model.Entry)
	for _, entry := range entries {
		key := LetterKey(entry.Title)
		groups[key] = append(groups[key], entry)
	}
	return groups
}

// PageCount returns ceil(count / pageSize) with a floor of one page.
func PageCount(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// ReconcilePages recomputes the per-letter page map after the underlying
// entry counts change. Keys present in counts keep their previous page
// clamped into the new valid range (defaulting to 1 when the key is new);
// keys absent from counts are dropped. Pure: prev is never mutated.
func ReconcilePages(counts map[string]int, prev map[string]int, pageSize int) map[string]int {
	next := make(map[string]int, len(counts))
	for key, count := range counts {
		page := prev[key]
		if page == 0 {
			page = 1
		}
		next[key] = ClampPage(page, PageCount(count, pageSize))
	}
	return next
}

// NormalizeQuery prepares a free-text search query: trim, lowercase.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// searchHaystack builds the lowercase text an entry is matched against:
// title, note, user tag, formatted date, formatted creation timestamp,
// space-joined in that order.
func searchHaystack(entry model.Entry) string {
	parts := []string{
		entry.Title,
		entry.Note,
		entry.User,
		FormatDate(entry.Date),
		FormatTimestamp(entry.CreatedAt),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// MatchesQuery reports whether the entry matches an already-normalized
// query via case-insensitive substring containment. An empty query matches
// everything.
func MatchesQuery(entry model.Entry, normalizedQuery string) bool {
	if normalizedQuery == "" {
		return true
	}
	return strings.Contains(searchHaystack(entry), normalizedQuery)
}

// dateLayouts are the accepted inputs for the optional date field.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// FormatDate renders a raw date value for display. Blank or unparseable
// input yields the empty string; valid input renders as e.g. "Mar 1, 2026".
// Never errors.
func FormatDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}

	return ""
}

// FormatTimestamp renders a creation timestamp the same way FormatDate
// renders valid dates. The zero time yields the empty string.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// BuildSections computes the full agenda view: filter by query, group by
// letter key, order sections and their entries with the collator, and
// paginate each section from the given per-letter page map.
//
// With a non-empty query, pagination is suspended: every matching entry in
// a section is shown on a single synthetic page. Sections with no entries
// are never emitted.
func BuildSections(entries []model.Entry, query string, pages map[string]int, pageSize int) []Section {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	normalized := NormalizeQuery(query)

	var filtered []model.Entry
	if normalized == "" {
		filtered = entries
	} else {
		for _, entry := range entries {
			if MatchesQuery(entry, normalized) {
				filtered = append(filtered, entry)
			}
		}
	}

	groups := GroupByLetter(filtered)

	// Reconcile the caller's page map against the current counts so every
	// section below reads an in-range page. Skipped in search mode, where
	// pagination is suspended.
	var applied map[string]int
	if normalized == "" {
		counts := make(map[string]int, len(groups))
		for key, group := range groups {
			counts[key] = len(group)
		}
		applied = ReconcilePages(counts, pages, pageSize)
	}

	coll := newCollator()

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return coll.CompareString(keys[i], keys[j]) < 0
	})

	sections := make([]Section, 0, len(keys))
	for _, key := range keys {
		group := groups[key]

		// Stable so entries with equal titles keep their input order.
		sort.SliceStable(group, func(i, j int) bool {
			return coll.CompareString(group[i].Title, group[j].Title) < 0
		})

		if normalized != "" {
			sections = append(sections, Section{
				Key:        key,
				Entries:    group,
				Page:       1,
				TotalPages: 1,
				Total:      len(group),
			})
			continue
		}

		totalPages := PageCount(len(group), pageSize)
		page := applied[key]

		start := (page - 1) * pageSize
		end := start + pageSize
		if end > len(group) {
			end = len(group)
		}

		sections = append(sections, Section{
			Key:        key,
			Entries:    group[start:end],
			Page:       page,
			TotalPages: totalPages,
			Total:      len(group),
		})
	}

	return sections
}
