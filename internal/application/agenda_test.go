package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomunapp/gomun/internal/domain/model"
)

func entryWithTitle(title string) model.Entry {
	return model.Entry{ID: title, Title: title}
}

func TestLetterKey(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"uppercase latin", "Zebra", "Z"},
		{"lowercase folds", "apple", "A"},
		{"leading whitespace trimmed", "  banana", "B"},
		{"accented letter is catch-all", "éclair", CatchAllKey},
		{"digit is catch-all", "42 things", CatchAllKey},
		{"punctuation is catch-all", "#hashtag", CatchAllKey},
		{"empty title is catch-all", "", CatchAllKey},
		{"whitespace-only title is catch-all", "   ", CatchAllKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LetterKey(tt.title))
		})
	}
}

func TestGroupByLetter(t *testing.T) {
	entries := []model.Entry{
		entryWithTitle("apple"),
		entryWithTitle("Avocado"),
		entryWithTitle("banana"),
		entryWithTitle("éclair"),
	}

	groups := GroupByLetter(entries)

	require.Len(t, groups, 3)
	assert.Len(t, groups["A"], 2)
	assert.Len(t, groups["B"], 1)
	assert.Len(t, groups[CatchAllKey], 1)
}

func TestBuildSections_SectionOrder(t *testing.T) {
	entries := []model.Entry{
		entryWithTitle("zebra"),
		entryWithTitle("#tagged"),
		entryWithTitle("apple"),
		entryWithTitle("Mango"),
	}

	sections := BuildSections(entries, "", nil, DefaultPageSize)

	keys := make([]string, 0, len(sections))
	for _, s := range sections {
		keys = append(keys, s.Key)
	}

	// The catch-all symbol collates before letters.
	assert.Equal(t, []string{CatchAllKey, "A", "M", "Z"}, keys)
}

func TestBuildSections_Idempotent(t *testing.T) {
	entries := []model.Entry{
		entryWithTitle("delta"),
		entryWithTitle("Bravo"),
		entryWithTitle("alpha"),
		entryWithTitle("bravo"),
	}

	first := BuildSections(entries, "", nil, DefaultPageSize)
	second := BuildSections(entries, "", nil, DefaultPageSize)

	assert.Equal(t, first, second)
}

func TestBuildSections_WithinSectionOrder(t *testing.T) {
	entries := []model.Entry{
		entryWithTitle("Banana split"),
		entryWithTitle("banana"),
		entryWithTitle("Blueberry"),
	}

	sections := BuildSections(entries, "", nil, DefaultPageSize)

	require.Len(t, sections, 1)
	titles := make([]string, 0, 3)
	for _, e := range sections[0].Entries {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"banana", "Banana split", "Blueberry"}, titles)
}

func TestBuildSections_StableForEqualTitles(t *testing.T) {
	// Same title, distinct ids; input order must survive the sort.
	entries := []model.Entry{
		{ID: "first", Title: "Echo"},
		{ID: "second", Title: "echo"},
		{ID: "third", Title: "Echo"},
	}

	sections := BuildSections(entries, "", nil, DefaultPageSize)

	require.Len(t, sections, 1)
	ids := make([]string, 0, 3)
	for _, e := range sections[0].Entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"first", "second", "third"}, ids)
}

func TestBuildSections_EmptySectionNeverEmitted(t *testing.T) {
	sections := BuildSections([]model.Entry{entryWithTitle("Mango")}, "", nil, DefaultPageSize)
	require.Len(t, sections, 1)

	// Deleting the only M entry removes the section on the next recompute.
	sections = BuildSections(nil, "", map[string]int{"M": 1}, DefaultPageSize)
	assert.Empty(t, sections)
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 1},
		{1, 1},
		{5, 1},
		{6, 2},
		{12, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d entries", tt.count), func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.count, 5))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-2, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(4, 3))
	assert.Equal(t, 1, ClampPage(7, 1))
}

func TestBuildSections_Pagination(t *testing.T) {
	var entries []model.Entry
	for i := 0; i < 12; i++ {
		entries = append(entries, model.Entry{
			ID:    fmt.Sprintf("e%02d", i),
			Title: fmt.Sprintf("Task %02d", i),
		})
	}

	t.Run("page 1 by default", func(t *testing.T) {
		sections := BuildSections(entries, "", nil, 5)
		require.Len(t, sections, 1)
		s := sections[0]
		assert.Equal(t, 1, s.Page)
		assert.Equal(t, 3, s.TotalPages)
		assert.Equal(t, 12, s.Total)
		assert.Len(t, s.Entries, 5)
		assert.Equal(t, "Task 00", s.Entries[0].Title)
	})

	t.Run("last page is short", func(t *testing.T) {
		sections := BuildSections(entries, "", map[string]int{"T": 3}, 5)
		require.Len(t, sections, 1)
		s := sections[0]
		assert.Equal(t, 3, s.Page)
		assert.Len(t, s.Entries, 2)
		assert.Equal(t, "Task 10", s.Entries[0].Title)
	})

	t.Run("out-of-range pages clamp", func(t *testing.T) {
		sections := BuildSections(entries, "", map[string]int{"T": 0}, 5)
		assert.Equal(t, 1, sections[0].Page)

		sections = BuildSections(entries, "", map[string]int{"T": 4}, 5)
		assert.Equal(t, 3, sections[0].Page)
	})

	t.Run("page positions are independent per letter", func(t *testing.T) {
		mixed := append([]model.Entry{}, entries...)
		for i := 0; i < 7; i++ {
			mixed = append(mixed, model.Entry{
				ID:    fmt.Sprintf("a%02d", i),
				Title: fmt.Sprintf("Aim %02d", i),
			})
		}

		sections := BuildSections(mixed, "", map[string]int{"A": 2, "T": 3}, 5)
		require.Len(t, sections, 2)
		assert.Equal(t, "A", sections[0].Key)
		assert.Equal(t, 2, sections[0].Page)
		assert.Equal(t, "T", sections[1].Key)
		assert.Equal(t, 3, sections[1].Page)
	})
}

func TestReconcilePages(t *testing.T) {
	t.Run("shrinking count clamps stored page", func(t *testing.T) {
		// 12 entries -> 4 entries: totalPages 3 -> 1, stored page 3 -> 1.
		prev := map[string]int{"M": 3}
		next := ReconcilePages(map[string]int{"M": 4}, prev, 5)
		assert.Equal(t, map[string]int{"M": 1}, next)
	})

	t.Run("new keys default to page 1", func(t *testing.T) {
		next := ReconcilePages(map[string]int{"A": 2}, nil, 5)
		assert.Equal(t, map[string]int{"A": 1}, next)
	})

	t.Run("stale keys are dropped", func(t *testing.T) {
		prev := map[string]int{"A": 1, "Z": 2}
		next := ReconcilePages(map[string]int{"A": 3}, prev, 5)
		assert.Equal(t, map[string]int{"A": 1}, next)
	})

	t.Run("unrelated letters keep their position", func(t *testing.T) {
		prev := map[string]int{"A": 2, "B": 1}
		next := ReconcilePages(map[string]int{"A": 12, "B": 12}, prev, 5)
		assert.Equal(t, map[string]int{"A": 2, "B": 1}, next)
	})

	t.Run("does not mutate prev", func(t *testing.T) {
		prev := map[string]int{"A": 9}
		_ = ReconcilePages(map[string]int{"A": 1}, prev, 5)
		assert.Equal(t, 9, prev["A"])
	})
}

func TestBuildSections_AppliesReconciledPages(t *testing.T) {
	var entries []model.Entry
	for i := 0; i < 12; i++ {
		entries = append(entries, model.Entry{
			ID:    fmt.Sprintf("m%02d", i),
			Title: fmt.Sprintf("Mile %02d", i),
		})
	}

	prev := map[string]int{"M": 3, "Z": 2}
	want := ReconcilePages(map[string]int{"M": 12}, prev, 5)

	sections := BuildSections(entries, "", prev, 5)
	require.Len(t, sections, 1)
	assert.Equal(t, want["M"], sections[0].Page)
}

func TestBuildSections_Search(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	entries := []model.Entry{
		{ID: "1", Title: "Visit Paris", Note: "see the Louvre", User: "mun", CreatedAt: created},
		{ID: "2", Title: "Big Ben", Note: "trip to London", User: "mun", CreatedAt: created},
		{ID: "3", Title: "Sleep in", User: "ana", Date: "2026-03-01", CreatedAt: created},
	}

	t.Run("empty query returns everything", func(t *testing.T) {
		plain := BuildSections(entries, "", nil, DefaultPageSize)
		searched := BuildSections(entries, "   ", nil, DefaultPageSize)
		require.Len(t, searched, len(plain))
		for i := range plain {
			assert.Equal(t, plain[i].Key, searched[i].Key)
			assert.Equal(t, plain[i].Entries, searched[i].Entries)
		}
	})

	t.Run("matches note case-insensitively", func(t *testing.T) {
		sections := BuildSections(entries, "london", nil, DefaultPageSize)
		require.Len(t, sections, 1)
		assert.Equal(t, "B", sections[0].Key)
		assert.Equal(t, "Big Ben", sections[0].Entries[0].Title)
	})

	t.Run("matches user tag", func(t *testing.T) {
		sections := BuildSections(entries, "ana", nil, DefaultPageSize)
		require.Len(t, sections, 1)
		assert.Equal(t, "Sleep in", sections[0].Entries[0].Title)
	})

	t.Run("matches formatted date", func(t *testing.T) {
		sections := BuildSections(entries, "mar 1, 2026", nil, DefaultPageSize)
		require.Len(t, sections, 1)
		assert.Equal(t, "Sleep in", sections[0].Entries[0].Title)
	})

	t.Run("zero matches yields zero sections", func(t *testing.T) {
		sections := BuildSections(entries, "no such thing", nil, DefaultPageSize)
		assert.Empty(t, sections)
	})

	t.Run("search mode is single-page", func(t *testing.T) {
		var many []model.Entry
		for i := 0; i < 12; i++ {
			many = append(many, model.Entry{
				ID:    fmt.Sprintf("t%02d", i),
				Title: fmt.Sprintf("Trip %02d", i),
			})
		}

		sections := BuildSections(many, "trip", map[string]int{"T": 2}, 5)
		require.Len(t, sections, 1)
		s := sections[0]
		assert.Equal(t, 1, s.Page)
		assert.Equal(t, 1, s.TotalPages)
		assert.Len(t, s.Entries, 12, "pagination is suspended in search mode")
	})
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"blank", "", ""},
		{"whitespace", "  ", ""},
		{"date only", "2026-03-01", "Mar 1, 2026"},
		{"rfc3339", "2026-03-01T10:30:00Z", "Mar 1, 2026"},
		{"datetime", "2026-03-01 10:30:00", "Mar 1, 2026"},
		{"garbage", "not a date", ""},
		{"partial garbage", "2026-13-45", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDate(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "Invalid")
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "", FormatTimestamp(time.Time{}))
	assert.Equal(t, "Mar 14, 2026", FormatTimestamp(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "", NormalizeQuery("   "))
	assert.Equal(t, "london", NormalizeQuery("  LoNdOn "))
}
