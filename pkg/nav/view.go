// Package nav is the navigation and selection state machine. The current
// view is a sum type whose variants carry exactly the selection they need.
package nav

import (
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
)

// Name identifies a view variant.
type Name int

const (
	NameDashboard Name = iota
	NameJournal
	NameLibrary
	NameWrite
	NameReadItem
)

var names = map[Name]string{
	NameDashboard: "dashboard",
	NameJournal:   "journal",
	NameLibrary:   "library",
	NameWrite:     "write",
	NameReadItem:  "read",
}

func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "unknown"
}

// Tabs are the views reachable from the persistent navigation control.
func Tabs() []Name {
	return []Name{NameDashboard, NameJournal, NameLibrary}
}

// IsTab reports whether n is reachable from the navigation control.
func IsTab(n Name) bool {
	return n == NameDashboard || n == NameJournal || n == NameLibrary
}

// View is the current screen. Only the types in this package implement it.
type View interface {
	Name() Name
	view()
}

// Dashboard is the initial view.
type Dashboard struct{}

// Journal lists the journal entries.
type Journal struct{}

// Library lists the library items.
type Library struct{}

// Write is the editor. Entry is set when editing an existing entry; Linked is
// set when a new entry is seeded from a library item. Both nil is a blank
// entry. Use BlankWrite, EditWrite or ReflectWrite to build one.
type Write struct {
	Entry  *journal.Entry
	Linked *library.Item
}

// ReadItem shows a single library item.
type ReadItem struct {
	Item library.Item
}

func (Dashboard) Name() Name { return NameDashboard }
func (Journal) Name() Name   { return NameJournal }
func (Library) Name() Name   { return NameLibrary }
func (Write) Name() Name     { return NameWrite }
func (ReadItem) Name() Name  { return NameReadItem }

func (Dashboard) view() {}
func (Journal) view()   {}
func (Library) view()   {}
func (Write) view()     {}
func (ReadItem) view()  {}

// BlankWrite opens the editor with no selection.
func BlankWrite() Write {
	return Write{}
}

// EditWrite opens the editor on a copy of e.
func EditWrite(e journal.Entry) Write {
	c := e.Clone()
	return Write{Entry: &c}
}

// ReflectWrite opens the editor for a new entry inspired by item.
func ReflectWrite(item library.Item) Write {
	return Write{Linked: &item}
}

// Editing reports whether the editor holds an existing entry.
func (w Write) Editing() bool {
	return w.Entry != nil
}

// ViewFor returns the zero-payload view for a tab name.
func ViewFor(n Name) (View, bool) {
	switch n {
	case NameDashboard:
		return Dashboard{}, true
	case NameJournal:
		return Journal{}, true
	case NameLibrary:
		return Library{}, true
	}
	return nil, false
}
