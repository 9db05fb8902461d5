package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/views"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestJournalRows(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := PrettyPrint{ShowID: true, Out: &buf}

	rows := views.JournalList([]journal.Entry{{
		ID:              "17",
		Date:            journal.At(time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)),
		Content:         strings.Repeat("palabra ", 20),
		LinkedLibraryID: "3",
	}}).Rows
	pp.Journal(rows...)

	out := buf.String()
	for _, want := range []string{"17", "2025-05-01", "↳", journal.UntitledLabel, "…"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEmptyJournal(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Journal()
	if !strings.Contains(buf.String(), "nada todavía") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestLibraryRows(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Library(library.Seed()...)

	out := buf.String()
	if !strings.Contains(out, "ESTOICISMO") || !strings.Contains(out, "★") {
		t.Fatalf("output missing category or favorite:\n%s", out)
	}
	if strings.Contains(out, "\n1 ") {
		t.Fatalf("ids printed without --show-id:\n%s", out)
	}
}

func TestItemWraps(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	it := library.Item{
		ID:       "9",
		Title:    "Largo",
		Author:   "Alguien",
		Content:  strings.Repeat("silencio ", 40),
		Category: library.CategoryMindfulness,
	}
	pp.Item(it)
	for _, line := range strings.Split(buf.String(), "\n") {
		if len([]rune(line)) > readWidth {
			t.Fatalf("line wider than %d: %q", readWidth, line)
		}
	}
	if !strings.Contains(buf.String(), "— Alguien") {
		t.Fatalf("missing author:\n%s", buf.String())
	}
}
