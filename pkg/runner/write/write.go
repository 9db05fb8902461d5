// Package write saves a journal entry from the command line.
package write

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/printers"
)

// Write creates or edits an entry. ID selects an existing entry to edit;
// ReflectOn seeds a new entry from a library item. They are exclusive.
type Write struct {
	ID        string
	ReflectOn string
	Title     string
	// TitleSet distinguishes an explicit empty title from a missing flag.
	TitleSet bool
	Content  string
	ShowID   bool

	Service *app.Service
	Out     io.Writer
}

var ErrConflictingTargets = app.ErrConflictingTargets

func (n *Write) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not write, no service")
	}
	w, err := n.Service.WriteTarget(n.ID, n.ReflectOn)
	if err != nil {
		return err
	}
	var title *string
	if n.TitleSet {
		title = &n.Title
	}
	e, err := n.Service.SaveDraft(ctx, w, title, n.Content)
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.NewLine()
	pp.Entry(e)
	return nil
}
