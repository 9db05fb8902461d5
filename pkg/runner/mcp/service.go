// Package mcp provides the Model Context Protocol server integration for serenitas.
package mcp

import (
	"context"
	"errors"
	"sync"
	"time"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/logger"
	"tableflip.dev/serenitas/pkg/views"
)

// Service serializes MCP calls onto the single-writer app.Service.
type Service struct {
	mu  sync.Mutex
	app *app.Service
	log logger.Logger
}

var (
	errNoApp = errors.New("mcp: service is not configured")
	// ErrConflictingTargets is returned when a save names both an entry and a library item.
	ErrConflictingTargets = app.ErrConflictingTargets
)

// SaveEntryOptions captures the parameters used to create or edit an entry.
type SaveEntryOptions struct {
	// ID edits an existing entry when set.
	ID string
	// ReflectOn links a new entry to a library item.
	ReflectOn string
	// Title overrides the editor's initial title when non-nil.
	Title   *string
	Content string
}

// EntryList is the list_entries payload.
type EntryList struct {
	Entries []journal.Entry `json:"entries"`
	Count   int             `json:"count"`
	Total   int             `json:"total"`
}

// LibraryList is the list_library payload.
type LibraryList struct {
	Category string         `json:"category,omitempty"`
	Items    []library.Item `json:"items"`
	Count    int            `json:"count"`
}

// NewService wraps a hydrated app.Service.
func NewService(a *app.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{app: a, log: log}
}

// ListEntries returns entries newest first. A limit below one returns all; a
// positive since drops entries older than that window.
func (s *Service) ListEntries(ctx context.Context, limit int, since time.Duration) (EntryList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.app == nil {
		return EntryList{}, errNoApp
	}
	all, err := s.app.Entries()
	if err != nil {
		return EntryList{}, err
	}
	if since > 0 {
		all = journal.Since(all, s.app.NewTimestamp().Add(-since))
	}
	rows := views.JournalList(all).Rows
	out := EntryList{Entries: make([]journal.Entry, 0, len(rows)), Total: len(rows)}
	for _, r := range rows {
		if limit > 0 && len(out.Entries) >= limit {
			break
		}
		out.Entries = append(out.Entries, r.Entry)
	}
	out.Count = len(out.Entries)
	return out, nil
}

// EntryByID returns a single entry.
func (s *Service) EntryByID(ctx context.Context, id string) (journal.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.app == nil {
		return journal.Entry{}, errNoApp
	}
	return s.app.Entry(id)
}

// SaveEntry creates or edits an entry the same way the editor does.
func (s *Service) SaveEntry(ctx context.Context, opts SaveEntryOptions) (journal.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.app == nil {
		return journal.Entry{}, errNoApp
	}
	w, err := s.app.WriteTarget(opts.ID, opts.ReflectOn)
	if err != nil {
		return journal.Entry{}, err
	}
	e, err := s.app.SaveDraft(ctx, w, opts.Title, opts.Content)
	if err != nil {
		s.log.Warn("save_entry failed", logger.Error(err))
		return journal.Entry{}, err
	}
	return e, nil
}

// ListLibrary returns library items, optionally in one category.
func (s *Service) ListLibrary(ctx context.Context, category library.Category) (LibraryList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.app == nil {
		return LibraryList{}, errNoApp
	}
	all, err := s.app.Library()
	if err != nil {
		return LibraryList{}, err
	}
	m := views.LibraryList(all, category)
	return LibraryList{Category: category.String(), Items: m.Items, Count: len(m.Items)}, nil
}

// LibraryItemByID returns a single library item.
func (s *Service) LibraryItemByID(ctx context.Context, id string) (library.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.app == nil {
		return library.Item{}, errNoApp
	}
	return s.app.LibraryItem(id)
}

// Discover adds a random corpus excerpt to the library.
func (s *Service) Discover(ctx context.Context) (library.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.app == nil {
		return library.Item{}, errNoApp
	}
	item, err := s.app.Discover(ctx)
	if err != nil {
		s.log.Warn("discover failed", logger.Error(err))
	}
	return item, err
}
