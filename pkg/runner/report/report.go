// Package report prints journal activity for a recent window, grouped by reading.
package report

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/printers"
	"tableflip.dev/serenitas/pkg/timeutil"
	"tableflip.dev/serenitas/pkg/views"
)

// DefaultWindow is used when no window is given.
const DefaultWindow = 7 * 24 * time.Hour

const freeSection = "Notas libres"

type Report struct {
	Window  time.Duration
	ShowID  bool
	Service *app.Service
	// Out defaults to color.Output.
	Out io.Writer
}

func (r *Report) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not report, no service")
	}
	window := r.Window
	if window <= 0 {
		window = DefaultWindow
	}
	until := r.Service.NewTimestamp().Time
	result, err := r.Service.Report(ctx, until.Add(-window), until)
	if err != nil {
		return err
	}

	out := r.Out
	if out == nil {
		out = color.Output
	}
	faint := color.New(color.Faint)
	heading := color.New(color.Bold)

	pp := printers.PrettyPrint{ShowID: r.ShowID, Out: out}
	pp.NewLine()
	pp.TitleWithCount("Reflexiones · "+timeutil.Describe(window), result.Total)
	_, _ = faint.Fprintf(out, "%s → %s\n",
		result.Since.Local().Format("2006-01-02 15:04"),
		result.Until.Local().Format("2006-01-02 15:04"))
	pp.NewLine()

	if result.Total == 0 {
		pp.Journal()
		return nil
	}
	for _, section := range result.Sections {
		if section.Item == nil {
			_, _ = heading.Fprintln(out, freeSection)
		} else {
			_, _ = heading.Fprint(out, section.Item.Title)
			_, _ = faint.Fprintf(out, " — %s\n", section.Item.Author)
		}
		pp.Journal(views.JournalList(section.Entries).Rows...)
	}
	return nil
}
