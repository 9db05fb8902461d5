package views

import (
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/nav"
)

// ReflectionPrefix starts the title of an entry seeded from a library item.
const ReflectionPrefix = "Reflexión: "

// EditorModel is the writing screen.
type EditorModel struct {
	Title   string
	Content string
	// Linked is the item the new entry reflects on, if any.
	Linked *library.Item
	// Reflection is the legacy annotation of the edited entry, shown read-only.
	Reflection string
	Intents    []nav.Kind

	entry *journal.Entry
}

// Editor builds the writing screen for w.
func Editor(w nav.Write) EditorModel {
	m := EditorModel{
		Intents: []nav.Kind{nav.KindSave, nav.KindCancel},
	}
	switch {
	case w.Entry != nil:
		e := w.Entry.Clone()
		m.entry = &e
		m.Title = e.Title
		m.Content = e.Content
		m.Reflection = e.AIReflection
	case w.Linked != nil:
		item := *w.Linked
		m.Linked = &item
		m.Title = ReflectionPrefix + item.Title
	}
	return m
}

// Editing reports whether the editor holds an existing entry.
func (m EditorModel) Editing() bool {
	return m.entry != nil
}

// Compose builds the entry to save from the edited fields. It returns false
// when content is blank. An edited entry keeps its id, date and legacy fields,
// so id and now are only used for new entries.
func (m EditorModel) Compose(title, content, id string, now journal.Timestamp) (journal.Entry, bool) {
	if journal.Blank(content) {
		return journal.Entry{}, false
	}
	if title == "" {
		title = journal.DefaultTitle
	}

	var e journal.Entry
	if m.entry != nil {
		e = m.entry.Clone()
	} else {
		e = journal.Entry{ID: id, Date: now, Tags: []string{}}
	}
	e.Title = title
	e.Content = content
	if m.Linked != nil {
		e.LinkedLibraryID = m.Linked.ID
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e, true
}
