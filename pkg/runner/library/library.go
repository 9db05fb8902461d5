// Package library lists, reads and discovers library items on the command line.
package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/serenitas/pkg/app"
	lib "tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/nav"
	"tableflip.dev/serenitas/pkg/printers"
	"tableflip.dev/serenitas/pkg/views"
)

var errNoService = errors.New("library: no service")

func output(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

// List prints the library, optionally filtered by category.
type List struct {
	Category lib.Category
	ShowID   bool
	JSON     bool
	Service  *app.Service
	Out      io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	items, err := n.Service.Library()
	if err != nil {
		return err
	}
	m := views.LibraryList(items, n.Category)
	out := output(n.Out)

	if n.JSON {
		b, err := json.MarshalIndent(m.Items, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	title := "Biblioteca"
	if m.Filter != "" {
		title += " · " + m.Filter.String()
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.NewLine()
	pp.Title(title)
	pp.Library(m.Items...)
	return nil
}

// Read prints a single item.
type Read struct {
	ID      string
	ShowID  bool
	Service *app.Service
	Out     io.Writer
}

func (n *Read) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	item, err := n.Service.LibraryItem(n.ID)
	if err != nil {
		return err
	}
	m := views.Reader(nav.ReadItem{Item: item})
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: output(n.Out)}
	pp.Item(m.Item)
	return nil
}

// Discover adds a random corpus excerpt and prints it.
type Discover struct {
	ShowID  bool
	Service *app.Service
	Out     io.Writer
}

func (n *Discover) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	item, err := n.Service.Discover(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: output(n.Out)}
	pp.Item(item)
	return nil
}
