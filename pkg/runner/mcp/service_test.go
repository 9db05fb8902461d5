package mcp

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/store"
)

type firstProvider struct{}

func (firstProvider) PickRandom() library.Template { return library.Corpus()[0] }

func newService(t *testing.T) (*Service, *app.Service) {
	t.Helper()
	clock := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	a := &app.Service{
		Gateway:  store.NewMemory(),
		Provider: firstProvider{},
		Now:      func() time.Time { return clock },
	}
	if err := a.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	return NewService(a, nil), a
}

func TestServiceSaveEntryDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	e, err := svc.SaveEntry(ctx, SaveEntryOptions{Content: "Hoy fue un buen día"})
	if err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	if e.Title != journal.DefaultTitle || e.Linked() || e.ID == "" {
		t.Fatalf("entry = %+v", e)
	}

	got, err := svc.EntryByID(ctx, e.ID)
	if err != nil || got.Content != e.Content {
		t.Fatalf("EntryByID = %+v, %v", got, err)
	}
}

func TestServiceSaveEntryReflectAndEdit(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	e, err := svc.SaveEntry(ctx, SaveEntryOptions{ReflectOn: "3", Content: "algo"})
	if err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	if e.Title != "Reflexión: Manual de Vida (Enquiridión)" || e.LinkedLibraryID != "3" {
		t.Fatalf("entry = %+v", e)
	}

	empty := ""
	edited, err := svc.SaveEntry(ctx, SaveEntryOptions{ID: e.ID, Title: &empty, Content: "otra cosa"})
	if err != nil {
		t.Fatalf("SaveEntry edit: %v", err)
	}
	if edited.ID != e.ID || edited.Title != journal.DefaultTitle || edited.LinkedLibraryID != "3" {
		t.Fatalf("edited = %+v", edited)
	}

	list, err := svc.ListEntries(ctx, 0, 0)
	if err != nil || list.Total != 1 {
		t.Fatalf("ListEntries = %+v, %v", list, err)
	}
}

func TestServiceSaveEntryErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	if _, err := svc.SaveEntry(ctx, SaveEntryOptions{Content: " "}); !errors.Is(err, journal.ErrEmptyContent) {
		t.Fatalf("blank err = %v", err)
	}
	if _, err := svc.SaveEntry(ctx, SaveEntryOptions{ID: "a", ReflectOn: "3", Content: "x"}); !errors.Is(err, ErrConflictingTargets) {
		t.Fatalf("conflict err = %v", err)
	}
	if _, err := svc.SaveEntry(ctx, SaveEntryOptions{ReflectOn: "404", Content: "x"}); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("missing item err = %v", err)
	}
}

func TestServiceListEntriesLimit(t *testing.T) {
	ctx := context.Background()
	svc, a := newService(t)
	for i := 0; i < 3; i++ {
		e := journal.Entry{
			ID:      string(rune('a' + i)),
			Date:    journal.At(time.Date(2025, 5, 1+i, 0, 0, 0, 0, time.UTC)),
			Content: "x",
		}
		if err := a.SaveEntry(ctx, e); err != nil {
			t.Fatalf("SaveEntry: %v", err)
		}
	}
	list, err := svc.ListEntries(ctx, 2, 0)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if list.Count != 2 || list.Total != 3 || list.Entries[0].ID != "c" {
		t.Fatalf("list = %+v", list)
	}

	// Clock is May 1 08:00; a one hour window drops a (May 1 00:00).
	recent, err := svc.ListEntries(ctx, 0, time.Hour)
	if err != nil {
		t.Fatalf("ListEntries since: %v", err)
	}
	if recent.Total != 2 || recent.Entries[1].ID != "b" {
		t.Fatalf("recent = %+v", recent)
	}
}

func TestServiceLibrary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	list, err := svc.ListLibrary(ctx, library.CategoryPoetry)
	if err != nil {
		t.Fatalf("ListLibrary: %v", err)
	}
	for _, it := range list.Items {
		if it.Category != library.CategoryPoetry {
			t.Fatalf("filter leaked %+v", it)
		}
	}

	item, err := svc.Discover(ctx)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	got, err := svc.LibraryItemByID(ctx, item.ID)
	if err != nil || got != item {
		t.Fatalf("LibraryItemByID = %+v, %v", got, err)
	}
	all, _ := svc.ListLibrary(ctx, "")
	if all.Count != 9 || all.Items[0].ID != item.ID {
		t.Fatalf("library = %+v", all)
	}
}

func TestServiceSerializesWriters(t *testing.T) {
	ctx := context.Background()
	svc, a := newService(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Discover(ctx); err != nil {
				t.Errorf("Discover: %v", err)
			}
		}()
	}
	wg.Wait()

	items, _ := a.Library()
	if len(items) != 16 {
		t.Fatalf("library has %d items, want 16", len(items))
	}
	seen := map[string]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Fatalf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestRunnerNewServer(t *testing.T) {
	if _, err := (Runner{}).NewServer(); err == nil {
		t.Fatalf("expected error without a service")
	}
	if _, err := (Runner{App: &app.Service{Gateway: store.NewMemory()}}).NewServer(); !errors.Is(err, app.ErrNotHydrated) {
		t.Fatalf("err = %v, want ErrNotHydrated", err)
	}
	_, a := newService(t)
	if srv, err := (Runner{App: a}).NewServer(); err != nil || srv == nil {
		t.Fatalf("NewServer = %v, %v", srv, err)
	}
}

func TestTemplateArg(t *testing.T) {
	cases := []map[string]any{
		{"id": "7"},
		{"id": []string{"7"}},
		{"id": []any{"7"}},
	}
	for _, args := range cases {
		if got := templateArg(args, "id"); got != "7" {
			t.Fatalf("templateArg(%v) = %q", args, got)
		}
	}
	if got := templateArg(map[string]any{}, "id"); got != "" {
		t.Fatalf("missing arg = %q", got)
	}
}
