// Package views holds the view contracts: pure functions from store state and
// the current view to the model a screen renders, plus the intents it emits.
package views

import (
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/nav"
)

// RecentLimit is the number of entries previewed on the dashboard.
const RecentLimit = 2

var tabLabels = map[nav.Name]string{
	nav.NameDashboard: "Inicio",
	nav.NameJournal:   "Diario",
	nav.NameLibrary:   "Lecturas",
}

// TabLabel is the navigation label for a tab view.
func TabLabel(n nav.Name) string {
	return tabLabels[n]
}

// DashboardModel is the landing screen.
type DashboardModel struct {
	// Featured is the first library item, nil when the library is empty.
	Featured   *library.Item
	EntryCount int
	Recent     []journal.Entry
	Intents    []nav.Kind
}

// Dashboard builds the landing screen. Recent entries follow storage order.
func Dashboard(entries []journal.Entry, items []library.Item) DashboardModel {
	m := DashboardModel{
		EntryCount: len(entries),
		Intents:    []nav.Kind{nav.KindNewEntry, nav.KindNavigate, nav.KindSelectItem, nav.KindSelectEntry},
	}
	if len(items) > 0 {
		f := items[0]
		m.Featured = &f
	}
	n := len(entries)
	if n > RecentLimit {
		n = RecentLimit
	}
	m.Recent = make([]journal.Entry, 0, n)
	for _, e := range entries[:n] {
		m.Recent = append(m.Recent, e.Clone())
	}
	return m
}

// JournalRow is one line of the journal list.
type JournalRow struct {
	Entry  journal.Entry
	Title  string
	Linked bool
}

// JournalModel lists entries newest first.
type JournalModel struct {
	Rows    []JournalRow
	Intents []nav.Kind
}

// Empty reports whether there is nothing to list.
func (m JournalModel) Empty() bool {
	return len(m.Rows) == 0
}

// JournalList sorts a copy of entries by date, newest first.
func JournalList(entries []journal.Entry) JournalModel {
	sorted := make([]journal.Entry, 0, len(entries))
	for _, e := range entries {
		sorted = append(sorted, e.Clone())
	}
	journal.SortByDateDesc(sorted)

	m := JournalModel{
		Rows:    make([]JournalRow, 0, len(sorted)),
		Intents: []nav.Kind{nav.KindNewEntry, nav.KindSelectEntry, nav.KindNavigate},
	}
	for _, e := range sorted {
		m.Rows = append(m.Rows, JournalRow{Entry: e, Title: e.DisplayTitle(), Linked: e.Linked()})
	}
	return m
}

// LibraryModel lists library items, optionally narrowed to one category.
type LibraryModel struct {
	Filter  library.Category
	Items   []library.Item
	Intents []nav.Kind
}

// LibraryList applies filter to items. An empty filter shows everything.
func LibraryList(items []library.Item, filter library.Category) LibraryModel {
	return LibraryModel{
		Filter:  filter,
		Items:   library.Filter(items, filter),
		Intents: []nav.Kind{nav.KindSelectItem, nav.KindDiscover, nav.KindNavigate},
	}
}

// NextFilter cycles through all categories and back to no filter.
func NextFilter(c library.Category) library.Category {
	all := library.AllCategories()
	if c == "" {
		return all[0]
	}
	for i, cat := range all {
		if cat == c && i+1 < len(all) {
			return all[i+1]
		}
	}
	return ""
}

// ReaderModel shows one library item.
type ReaderModel struct {
	Item    library.Item
	Intents []nav.Kind
}

// Reader builds the reading screen for the selected item.
func Reader(v nav.ReadItem) ReaderModel {
	return ReaderModel{
		Item:    v.Item,
		Intents: []nav.Kind{nav.KindReflect, nav.KindBack},
	}
}
