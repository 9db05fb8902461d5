// Package info reports where serenitas keeps its data.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("SERENITAS_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "SERENITAS_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "SERENITAS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.log:  ", n.Config.LogFile(), "("+n.Config.LogLevel()+")")

	if n.Service == nil {
		return errors.New("no service to inspect")
	}
	entries, err := n.Service.Entries()
	if err != nil {
		return err
	}
	items, err := n.Service.Library()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Records:\n  %s: %d entries\n  %s: %d items\n",
		store.EntriesKey, len(entries), store.LibraryKey, len(items))
	return nil
}
