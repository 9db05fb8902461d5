// Package journal lists journal entries on the command line.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/printers"
	"tableflip.dev/serenitas/pkg/timeutil"
	"tableflip.dev/serenitas/pkg/views"
)

// List prints the journal newest first.
type List struct {
	ShowID bool
	JSON   bool
	// Since limits the listing to entries newer than now minus Since.
	Since   time.Duration
	Service *app.Service
	// Out defaults to color.Output.
	Out io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	entries, err := n.Service.Entries()
	if err != nil {
		return err
	}
	title := "Mi Diario"
	if n.Since > 0 {
		entries = journal.Since(entries, n.Service.NewTimestamp().Add(-n.Since))
		title += " · " + timeutil.Describe(n.Since)
	}
	m := views.JournalList(entries)

	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.JSON {
		sorted := make([]any, 0, len(m.Rows))
		for _, r := range m.Rows {
			sorted = append(sorted, r.Entry)
		}
		b, err := json.MarshalIndent(sorted, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.NewLine()
	pp.TitleWithCount(title, len(m.Rows))
	pp.Journal(m.Rows...)
	return nil
}
