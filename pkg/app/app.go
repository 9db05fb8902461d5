package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/logger"
	"tableflip.dev/serenitas/pkg/store"
)

// Service is the authoritative in-memory copy of the journal and the library.
// Every mutation is written through to the Gateway before it is committed.
// Service is not safe for concurrent use.
type Service struct {
	Gateway  store.Gateway
	Provider library.Provider
	Log      logger.Logger
	// Now defaults to time.Now.
	Now func() time.Time

	hydrated bool
	entries  []journal.Entry
	library  []library.Item
}

var (
	ErrNotHydrated     = errors.New("app: store not hydrated")
	ErrAlreadyHydrated = errors.New("app: store already hydrated")
	ErrNotFound        = errors.New("app: not found")
)

// Hydrate loads both collections. It must be called once before anything
// else. A missing or unreadable library falls back to the seed set; missing or
// unreadable entries fall back to an empty journal.
func (s *Service) Hydrate(ctx context.Context) error {
	if s.Gateway == nil {
		return errors.New("app: no gateway configured")
	}
	if s.hydrated {
		return ErrAlreadyHydrated
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.loadEntries()
	if err != nil {
		return err
	}
	items, err := s.loadLibrary()
	if err != nil {
		return err
	}

	s.entries = entries
	s.library = items
	s.hydrated = true
	s.log().Info("hydrated",
		logger.Int("entries", len(entries)),
		logger.Int("library", len(items)))
	return nil
}

// Hydrated reports whether Hydrate completed.
func (s *Service) Hydrated() bool {
	return s.hydrated
}

func (s *Service) loadEntries() ([]journal.Entry, error) {
	blob, ok, err := s.Gateway.Load(store.EntriesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []journal.Entry{}, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		s.log().Warn("entries record unreadable, starting empty", logger.Error(err))
		return []journal.Entry{}, nil
	}
	entries := make([]journal.Entry, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		var e journal.Entry
		if err := json.Unmarshal(r, &e); err != nil {
			s.log().Warn("dropping undecodable entry", logger.String("id", recordID(r)), logger.Error(err))
			continue
		}
		if err := e.Validate(); err != nil {
			s.log().Warn("dropping invalid entry", logger.String("id", e.ID), logger.Error(err))
			continue
		}
		if _, dup := seen[e.ID]; dup {
			s.log().Warn("dropping duplicate entry", logger.String("id", e.ID))
			continue
		}
		seen[e.ID] = struct{}{}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *Service) loadLibrary() ([]library.Item, error) {
	blob, ok, err := s.Gateway.Load(store.LibraryKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return library.Seed(), nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		s.log().Warn("library record unreadable, using seed set", logger.Error(err))
		return library.Seed(), nil
	}
	items := make([]library.Item, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		var it library.Item
		if err := json.Unmarshal(r, &it); err != nil {
			s.log().Warn("dropping undecodable library item", logger.String("id", recordID(r)), logger.Error(err))
			continue
		}
		if err := it.Validate(); err != nil {
			s.log().Warn("dropping invalid library item", logger.String("id", it.ID), logger.Error(err))
			continue
		}
		if _, dup := seen[it.ID]; dup {
			s.log().Warn("dropping duplicate library item", logger.String("id", it.ID))
			continue
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return items, nil
}

// recordID pulls the id out of a record that failed to decode, for logging.
func recordID(r json.RawMessage) string {
	var rec struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(r, &rec); err != nil || rec.ID == nil {
		return ""
	}
	return fmt.Sprint(rec.ID)
}

// Entries returns the journal in storage order.
func (s *Service) Entries() ([]journal.Entry, error) {
	if !s.hydrated {
		return nil, ErrNotHydrated
	}
	out := make([]journal.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out, nil
}

// Library returns the library in storage order, newest discovery first.
func (s *Service) Library() ([]library.Item, error) {
	if !s.hydrated {
		return nil, ErrNotHydrated
	}
	out := make([]library.Item, len(s.library))
	copy(out, s.library)
	return out, nil
}

// Entry looks up a journal entry by id.
func (s *Service) Entry(id string) (journal.Entry, error) {
	if !s.hydrated {
		return journal.Entry{}, ErrNotHydrated
	}
	for _, e := range s.entries {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return journal.Entry{}, fmt.Errorf("%w: entry %q", ErrNotFound, id)
}

// LibraryItem looks up a library item by id. It resolves an entry's
// LinkedLibraryID.
func (s *Service) LibraryItem(id string) (library.Item, error) {
	if !s.hydrated {
		return library.Item{}, ErrNotHydrated
	}
	for _, it := range s.library {
		if it.ID == id {
			return it, nil
		}
	}
	return library.Item{}, fmt.Errorf("%w: library item %q", ErrNotFound, id)
}

// SaveEntry inserts e at the front of the journal, or replaces the entry with
// the same id in place.
func (s *Service) SaveEntry(ctx context.Context, e journal.Entry) error {
	if !s.hydrated {
		return ErrNotHydrated
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		return err
	}
	e = e.Clone()
	if e.Tags == nil {
		e.Tags = []string{}
	}

	next := make([]journal.Entry, 0, len(s.entries)+1)
	replaced := false
	for _, existing := range s.entries {
		if existing.ID == e.ID {
			next = append(next, e)
			replaced = true
			continue
		}
		next = append(next, existing)
	}
	if !replaced {
		next = append([]journal.Entry{e}, next...)
	}

	if err := s.persist(store.EntriesKey, next); err != nil {
		return err
	}
	s.entries = next
	s.log().Debug("entry saved", logger.String("id", e.ID))
	return nil
}

// AddLibraryItem prepends item to the library. It never replaces.
func (s *Service) AddLibraryItem(ctx context.Context, item library.Item) error {
	if !s.hydrated {
		return ErrNotHydrated
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	for _, existing := range s.library {
		if existing.ID == item.ID {
			s.log().Warn("library id collision", logger.String("id", item.ID))
			break
		}
	}

	next := make([]library.Item, 0, len(s.library)+1)
	next = append(next, item)
	next = append(next, s.library...)

	if err := s.persist(store.LibraryKey, next); err != nil {
		return err
	}
	s.library = next
	s.log().Debug("library item added", logger.String("id", item.ID))
	return nil
}

// Discover draws a random excerpt from the corpus and adds it to the library
// under a fresh id.
func (s *Service) Discover(ctx context.Context) (library.Item, error) {
	if !s.hydrated {
		return library.Item{}, ErrNotHydrated
	}
	if s.Provider == nil {
		s.Provider = library.NewProvider(nil)
	}
	item := s.Provider.PickRandom().Item(s.NewID())
	if err := s.AddLibraryItem(ctx, item); err != nil {
		return library.Item{}, err
	}
	return item, nil
}

// NewID returns a millisecond timestamp id not used by any entry or item.
func (s *Service) NewID() string {
	ms := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if !s.idInUse(id) {
			return id
		}
		ms++
	}
}

// NewTimestamp returns the current time at persisted precision.
func (s *Service) NewTimestamp() journal.Timestamp {
	return journal.At(s.now())
}

func (s *Service) idInUse(id string) bool {
	for _, e := range s.entries {
		if e.ID == id {
			return true
		}
	}
	for _, it := range s.library {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (s *Service) persist(key string, collection any) error {
	blob, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("app: encode %s: %w", key, err)
	}
	if err := s.Gateway.Store(key, blob); err != nil {
		s.log().Error("write-through failed", logger.String("key", key), logger.Error(err))
		return fmt.Errorf("app: persist %s: %w", key, err)
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) log() logger.Logger {
	if s.Log == nil {
		s.Log = logger.Nop()
	}
	return s.Log
}
