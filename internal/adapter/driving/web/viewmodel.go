package web

import (
	vm "github.com/gomunapp/gomun/internal/adapter/driving/web/viewmodel"
	"github.com/gomunapp/gomun/internal/application"
	"github.com/gomunapp/gomun/internal/domain/model"
)

// toEntryViewModel converts a single domain entry to its presentation form.
// Notes render as sanitized markdown; date labels are empty for absent or
// unparseable dates.
func toEntryViewModel(entry model.Entry) vm.EntryViewModel {
	return vm.EntryViewModel{
		ID:           entry.ID,
		Title:        entry.Title,
		Note:         entry.Note,
		NoteHTML:     RenderMarkdown(entry.Note),
		Date:         entry.Date,
		DateLabel:    application.FormatDate(entry.Date),
		User:         entry.User,
		CreatedLabel: application.FormatTimestamp(entry.CreatedAt),
	}
}

// toAgendaViewModel converts computed sections into the agenda view payload.
// The applied page numbers are echoed back as a map so the client can adopt
// clamped values.
func toAgendaViewModel(sections []application.Section, query string) vm.AgendaViewModel {
	out := vm.AgendaViewModel{
		Query:    query,
		Sections: make([]vm.SectionViewModel, 0, len(sections)),
		Pages:    make(map[string]int, len(sections)),
	}

	for _, section := range sections {
		entries := make([]vm.EntryViewModel, 0, len(section.Entries))
		for _, entry := range section.Entries {
			entries = append(entries, toEntryViewModel(entry))
		}

		out.Sections = append(out.Sections, vm.SectionViewModel{
			Key:        section.Key,
			Entries:    entries,
			Page:       section.Page,
			TotalPages: section.TotalPages,
			Total:      section.Total,
		})
		out.Pages[section.Key] = section.Page
	}

	return out
}
