// Package controller owns the application state: the hydrated Service and the
// navigation Machine. Front ends send intents through Dispatch and render
// from State.
package controller

import (
	"context"
	"errors"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/nav"
)

var ErrNoService = errors.New("controller: no service")

// Controller routes intents to the Service and the Machine.
type Controller struct {
	svc     *app.Service
	machine *nav.Machine
}

// State is a read-only snapshot for rendering.
type State struct {
	View    nav.View
	Entries []journal.Entry
	Library []library.Item
}

// New returns a controller on the Dashboard. svc must be hydrated.
func New(svc *app.Service) (*Controller, error) {
	if svc == nil {
		return nil, ErrNoService
	}
	if !svc.Hydrated() {
		return nil, app.ErrNotHydrated
	}
	return &Controller{svc: svc, machine: nav.NewMachine()}, nil
}

// State returns the current view and copies of both collections.
func (c *Controller) State() State {
	// Both reads only fail before hydration, which New rules out.
	entries, _ := c.svc.Entries()
	items, _ := c.svc.Library()
	return State{
		View:    c.machine.Current(),
		Entries: entries,
		Library: items,
	}
}

// Dispatch applies an intent. Invalid transitions leave the state unchanged.
// Saving blank content is ignored and keeps the editor open.
func (c *Controller) Dispatch(ctx context.Context, in nav.Intent) error {
	current := c.machine.Current()
	if _, err := nav.Next(current, in); err != nil {
		return err
	}

	switch in := in.(type) {
	case nav.Save:
		return c.save(ctx, current.(nav.Write), in)

	case nav.Discover:
		if _, err := c.svc.Discover(ctx); err != nil {
			return err
		}

	case nav.SelectItem:
		item, err := c.svc.LibraryItem(in.Item.ID)
		if err != nil {
			return err
		}
		return c.machine.Apply(nav.SelectItem{Item: item})

	case nav.SelectEntry:
		e, err := c.svc.Entry(in.Entry.ID)
		if err != nil {
			return err
		}
		return c.machine.Apply(nav.SelectEntry{Entry: e})
	}
	return c.machine.Apply(in)
}

func (c *Controller) save(ctx context.Context, w nav.Write, in nav.Save) error {
	title := in.Title
	if _, err := c.svc.SaveDraft(ctx, w, &title, in.Content); err != nil {
		if errors.Is(err, journal.ErrEmptyContent) {
			return nil
		}
		return err
	}
	return c.machine.Apply(in)
}
