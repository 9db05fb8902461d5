package app

import (
	"context"
	"errors"

	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/nav"
	"tableflip.dev/serenitas/pkg/views"
)

// ErrConflictingTargets is returned when a write names both an entry to edit
// and a library item to reflect on.
var ErrConflictingTargets = errors.New("app: edit id and reflect-on item are exclusive")

// WriteTarget resolves the editor to open: the entry with entryID for editing,
// a reflection on the item with itemID, or a blank entry when both are empty.
func (s *Service) WriteTarget(entryID, itemID string) (nav.Write, error) {
	switch {
	case entryID != "" && itemID != "":
		return nav.Write{}, ErrConflictingTargets
	case entryID != "":
		e, err := s.Entry(entryID)
		if err != nil {
			return nav.Write{}, err
		}
		return nav.EditWrite(e), nil
	case itemID != "":
		item, err := s.LibraryItem(itemID)
		if err != nil {
			return nav.Write{}, err
		}
		return nav.ReflectWrite(item), nil
	}
	return nav.BlankWrite(), nil
}

// SaveDraft saves what was typed into the editor for w. A nil title keeps the
// editor's initial title. Blank content returns journal.ErrEmptyContent and
// writes nothing.
func (s *Service) SaveDraft(ctx context.Context, w nav.Write, title *string, content string) (journal.Entry, error) {
	if !s.hydrated {
		return journal.Entry{}, ErrNotHydrated
	}
	ed := views.Editor(w)
	t := ed.Title
	if title != nil {
		t = *title
	}
	var id string
	if !ed.Editing() {
		id = s.NewID()
	}
	e, ok := ed.Compose(t, content, id, s.NewTimestamp())
	if !ok {
		return journal.Entry{}, journal.ErrEmptyContent
	}
	if err := s.SaveEntry(ctx, e); err != nil {
		return journal.Entry{}, err
	}
	return e, nil
}
