package app

import (
	"context"
	"sort"
	"time"

	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
)

// ReportSection groups the entries written about one library item. Free
// entries land in a section with a nil Item.
type ReportSection struct {
	Item    *library.Item
	Entries []journal.Entry
}

// Title is the item title, or empty for free entries.
func (r ReportSection) Title() string {
	if r.Item == nil {
		return ""
	}
	return r.Item.Title
}

// ReportResult is the journal activity between Since and Until.
type ReportResult struct {
	Since    time.Time
	Until    time.Time
	Sections []ReportSection
	Total    int
}

// Report returns the entries written between the bounds, grouped by the
// library item they reflect on. Sections with more entries come first, ties
// by item title; free entries always come last. Entries inside a section are
// newest first. A link to an item no longer in the library counts as free.
func (s *Service) Report(ctx context.Context, since, until time.Time) (ReportResult, error) {
	if !s.hydrated {
		return ReportResult{}, ErrNotHydrated
	}
	if err := ctx.Err(); err != nil {
		return ReportResult{}, err
	}
	if since.After(until) {
		since, until = until, since
	}

	items := make(map[string]library.Item, len(s.library))
	for _, it := range s.library {
		if _, ok := items[it.ID]; !ok {
			items[it.ID] = it
		}
	}

	grouped := make(map[string][]journal.Entry)
	var free []journal.Entry
	total := 0
	for _, e := range s.entries {
		if e.Date.Before(since) || e.Date.After(until) {
			continue
		}
		total++
		if _, ok := items[e.LinkedLibraryID]; e.Linked() && ok {
			grouped[e.LinkedLibraryID] = append(grouped[e.LinkedLibraryID], e.Clone())
			continue
		}
		free = append(free, e.Clone())
	}

	sections := make([]ReportSection, 0, len(grouped)+1)
	for id, entries := range grouped {
		it := items[id]
		journal.SortByDateDesc(entries)
		sections = append(sections, ReportSection{Item: &it, Entries: entries})
	}
	sort.SliceStable(sections, func(i, j int) bool {
		a, b := sections[i], sections[j]
		if len(a.Entries) != len(b.Entries) {
			return len(a.Entries) > len(b.Entries)
		}
		if a.Item.Title != b.Item.Title {
			return a.Item.Title < b.Item.Title
		}
		return a.Item.ID < b.Item.ID
	})
	if len(free) > 0 {
		journal.SortByDateDesc(free)
		sections = append(sections, ReportSection{Entries: free})
	}

	return ReportResult{
		Since:    since,
		Until:    until,
		Sections: sections,
		Total:    total,
	}, nil
}
