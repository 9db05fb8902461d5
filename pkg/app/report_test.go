package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/store"
)

func TestReportGroupsByLinkedItem(t *testing.T) {
	ctx := context.Background()
	s := newService(t, store.NewMemory())

	save := func(id, link string, age time.Duration) {
		t.Helper()
		e := newEntry(id, id)
		e.Date = journal.At(fixedNow.Add(-age))
		e.LinkedLibraryID = link
		if err := s.SaveEntry(ctx, e); err != nil {
			t.Fatalf("SaveEntry %s: %v", id, err)
		}
	}
	save("walden-1", "4", 2*time.Hour)
	save("epicteto", "3", 3*time.Hour)
	save("walden-2", "4", time.Hour)
	save("libre", "", 4*time.Hour)
	save("perdido", "999", 5*time.Hour)
	save("antiguo", "3", 40*24*time.Hour)

	got, err := s.Report(ctx, fixedNow, fixedNow.Add(-7*24*time.Hour))
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if got.Total != 5 {
		t.Fatalf("Total = %d, want 5", got.Total)
	}
	if !got.Since.Before(got.Until) {
		t.Fatalf("bounds not normalized: %v .. %v", got.Since, got.Until)
	}
	if len(got.Sections) != 3 {
		t.Fatalf("sections = %+v", got.Sections)
	}

	walden := got.Sections[0]
	if walden.Title() != "Walden" || len(walden.Entries) != 2 || walden.Entries[0].ID != "walden-2" {
		t.Fatalf("first section = %+v", walden)
	}
	if got.Sections[1].Title() != "Manual de Vida (Enquiridión)" || len(got.Sections[1].Entries) != 1 {
		t.Fatalf("second section = %+v", got.Sections[1])
	}
	free := got.Sections[2]
	if free.Item != nil || len(free.Entries) != 2 || free.Entries[0].ID != "libre" {
		t.Fatalf("free section = %+v", free)
	}
}

func TestReportEmptyWindow(t *testing.T) {
	s := newService(t, store.NewMemory())
	got, err := s.Report(context.Background(), fixedNow.Add(-time.Hour), fixedNow)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if got.Total != 0 || len(got.Sections) != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestReportRequiresHydration(t *testing.T) {
	s := &Service{Gateway: store.NewMemory()}
	if _, err := s.Report(context.Background(), fixedNow, fixedNow); !errors.Is(err, ErrNotHydrated) {
		t.Fatalf("err = %v, want ErrNotHydrated", err)
	}
}
