package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/nav"
	"tableflip.dev/serenitas/pkg/store"
)

var fixedNow = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

type firstProvider struct{}

func (firstProvider) PickRandom() library.Template {
	return library.Corpus()[0]
}

func newController(t *testing.T) (*Controller, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := &app.Service{
		Gateway:  mem,
		Provider: firstProvider{},
		Now:      func() time.Time { return fixedNow },
	}
	if err := svc.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	c, err := New(svc)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, mem
}

func dispatch(t *testing.T, c *Controller, intents ...nav.Intent) {
	t.Helper()
	for _, in := range intents {
		if err := c.Dispatch(context.Background(), in); err != nil {
			t.Fatalf("Dispatch(%s): %v", in.Kind(), err)
		}
	}
}

func TestNewRequiresHydratedService(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoService) {
		t.Fatalf("New(nil) err = %v", err)
	}
	if _, err := New(&app.Service{Gateway: store.NewMemory()}); !errors.Is(err, app.ErrNotHydrated) {
		t.Fatalf("New(unhydrated) err = %v", err)
	}
}

func TestStartsOnDashboardWithSeed(t *testing.T) {
	c, _ := newController(t)
	s := c.State()
	if s.View.Name() != nav.NameDashboard {
		t.Fatalf("view = %s", s.View.Name())
	}
	if len(s.Entries) != 0 || len(s.Library) != len(library.Seed()) {
		t.Fatalf("state = %d entries, %d items", len(s.Entries), len(s.Library))
	}
}

func TestSaveFromDashboard(t *testing.T) {
	c, mem := newController(t)
	dispatch(t, c, nav.NewEntry{}, nav.Save{Title: "", Content: "Hoy fue un buen día"})

	s := c.State()
	if s.View.Name() != nav.NameJournal {
		t.Fatalf("view = %s, want journal", s.View.Name())
	}
	if len(s.Entries) != 1 {
		t.Fatalf("entries = %d", len(s.Entries))
	}
	e := s.Entries[0]
	if e.Title != journal.DefaultTitle || e.Content != "Hoy fue un buen día" || e.Linked() {
		t.Fatalf("entry = %+v", e)
	}
	if e.ID != "1746086400000" || !e.Date.Equal(fixedNow) {
		t.Fatalf("entry id/date = %s %s", e.ID, e.Date)
	}
	if mem.Writes(store.EntriesKey) != 1 {
		t.Fatalf("entries writes = %d", mem.Writes(store.EntriesKey))
	}
}

func TestReflectOnItem(t *testing.T) {
	c, _ := newController(t)
	item := library.Item{ID: "3"}
	dispatch(t, c,
		nav.Navigate{To: nav.NameLibrary},
		nav.SelectItem{Item: item},
	)
	r, ok := c.State().View.(nav.ReadItem)
	if !ok || r.Item.Title != "Manual de Vida (Enquiridión)" {
		t.Fatalf("view = %#v, want reader resolved from store", c.State().View)
	}

	dispatch(t, c, nav.Reflect{})
	w, ok := c.State().View.(nav.Write)
	if !ok || w.Linked == nil || w.Linked.ID != "3" {
		t.Fatalf("view = %#v, want editor linked to item 3", c.State().View)
	}

	dispatch(t, c, nav.Save{Title: "Reflexión: Manual de Vida (Enquiridión)", Content: "Lo que depende de mí."})
	e := c.State().Entries[0]
	if e.LinkedLibraryID != "3" || e.Title != "Reflexión: Manual de Vida (Enquiridión)" {
		t.Fatalf("entry = %+v", e)
	}
}

func TestBlankSaveIsNoop(t *testing.T) {
	c, mem := newController(t)
	dispatch(t, c, nav.NewEntry{}, nav.Save{Title: "t", Content: "   "})
	if c.State().View.Name() != nav.NameWrite {
		t.Fatalf("blank save left the editor")
	}
	if len(c.State().Entries) != 0 || mem.Writes(store.EntriesKey) != 0 {
		t.Fatalf("blank save stored something")
	}
}

func TestEditKeepsIdentity(t *testing.T) {
	c, _ := newController(t)
	dispatch(t, c, nav.NewEntry{}, nav.Save{Title: "uno", Content: "primero"})
	first := c.State().Entries[0]

	dispatch(t, c,
		nav.SelectEntry{Entry: journal.Entry{ID: first.ID}},
		nav.Save{Title: "uno", Content: "corregido"},
	)
	s := c.State()
	if len(s.Entries) != 1 {
		t.Fatalf("edit inserted instead of replacing: %d entries", len(s.Entries))
	}
	if s.Entries[0].ID != first.ID || s.Entries[0].Content != "corregido" {
		t.Fatalf("entry = %+v", s.Entries[0])
	}
}

func TestDiscoverFromLibrary(t *testing.T) {
	c, _ := newController(t)
	if err := c.Dispatch(context.Background(), nav.Discover{}); !errors.Is(err, nav.ErrInvalidTransition) {
		t.Fatalf("Discover from dashboard err = %v", err)
	}
	if len(c.State().Library) != 8 {
		t.Fatalf("rejected discover mutated the library")
	}

	dispatch(t, c, nav.Navigate{To: nav.NameLibrary}, nav.Discover{})
	s := c.State()
	if s.View.Name() != nav.NameLibrary || len(s.Library) != 9 {
		t.Fatalf("view %s with %d items", s.View.Name(), len(s.Library))
	}
	if s.Library[0].Title != library.Corpus()[0].Title || s.Library[0].IsFavorite {
		t.Fatalf("discovered = %+v", s.Library[0])
	}
}

func TestSelectUnknownIDFails(t *testing.T) {
	c, _ := newController(t)
	err := c.Dispatch(context.Background(), nav.SelectItem{Item: library.Item{ID: "missing"}})
	if !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if c.State().View.Name() != nav.NameDashboard {
		t.Fatalf("failed select changed view")
	}
}

func TestCancelReturnsToJournal(t *testing.T) {
	c, _ := newController(t)
	dispatch(t, c, nav.NewEntry{}, nav.Cancel{})
	if c.State().View.Name() != nav.NameJournal {
		t.Fatalf("view = %s", c.State().View.Name())
	}
}
