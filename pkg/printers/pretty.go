package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/views"
)

const (
	previewWidth = 48
	readWidth    = 80
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entrada")
	default:
		_, _ = c.Fprintln(pp.out(), " entradas")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " nada todavía\n\n")
}

// Journal prints one row per entry in the given order.
func (pp *PrettyPrint) Journal(rows ...views.JournalRow) {
	if len(rows) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)
	link := color.New(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		cells := make([]interface{}, 0, 5)
		if pp.ShowID {
			cells = append(cells, y.Sprint(r.Entry.ID))
		}
		marker := " "
		if r.Linked {
			marker = link.Sprint("↳")
		}
		cells = append(cells,
			faint.Sprint(r.Entry.Date.Format("2006-01-02")),
			marker,
			r.Title,
			faint.Sprint(preview(r.Entry.Content)),
		)
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Library prints one row per item in the given order.
func (pp *PrettyPrint) Library(items ...library.Item) {
	if len(items) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	cat := color.New(color.Faint)
	star := color.New(color.FgYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range items {
		cells := make([]interface{}, 0, 5)
		if pp.ShowID {
			cells = append(cells, y.Sprint(it.ID))
		}
		fav := " "
		if it.IsFavorite {
			fav = star.Sprint("★")
		}
		cells = append(cells, fav, cat.Sprint(strings.ToUpper(it.Category.String())), it.Title, "— "+it.Author)
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Item prints a library item for reading.
func (pp *PrettyPrint) Item(it library.Item) {
	w := pp.out()
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)
	italic := color.New(color.Italic)

	pp.NewLine()
	_, _ = faint.Fprintln(w, strings.ToUpper(it.Category.String()))
	_, _ = bold.Fprintln(w, it.Title)
	pp.NewLine()
	_, _ = italic.Fprintln(w, indent.String(wordwrap.String("“"+it.Content+"”", readWidth-2), 2))
	pp.NewLine()
	_, _ = faint.Fprintln(w, "— "+it.Author)
	if pp.ShowID {
		_, _ = faint.Fprintf(w, "id: %s\n", it.ID)
	}
	pp.NewLine()
}

// Entry prints a full journal entry.
func (pp *PrettyPrint) Entry(e journal.Entry) {
	w := pp.out()
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	_, _ = bold.Fprintln(w, e.DisplayTitle())
	_, _ = faint.Fprintln(w, e.Date.Long())
	if pp.ShowID {
		_, _ = faint.Fprintf(w, "id: %s\n", e.ID)
	}
	if e.Linked() {
		_, _ = faint.Fprintf(w, "inspirado en: %s\n", e.LinkedLibraryID)
	}
	pp.NewLine()
	_, _ = fmt.Fprintln(w, wordwrap.String(e.Content, readWidth))
	if e.AIReflection != "" {
		pp.NewLine()
		_, _ = faint.Fprintln(w, indent.String(wordwrap.String(e.AIReflection, readWidth-2), 2))
	}
	pp.NewLine()
}

func preview(content string) string {
	line := strings.Join(strings.Fields(content), " ")
	return truncate.StringWithTail(line, previewWidth, "…")
}
