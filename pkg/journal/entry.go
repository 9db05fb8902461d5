// Package journal defines user-authored journal entries.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/serenitas/pkg/validate"
)

const (
	// DefaultTitle is stored when an entry is saved without a title.
	DefaultTitle = "Pensamiento del día"
	// UntitledLabel is displayed for entries whose stored title is empty.
	UntitledLabel = "Sin título"
)

// ErrEmptyContent is returned when an entry has no non-whitespace content.
var ErrEmptyContent = errors.New("journal: entry content is empty")

// Entry is a single reflection written by the user.
type Entry struct {
	ID      string    `json:"id" validate:"required"`
	Date    Timestamp `json:"date"`
	Title   string    `json:"title"`
	Content string    `json:"content" validate:"notblank"`
	Mood    string    `json:"mood,omitempty"`
	Tags    []string  `json:"tags"`
	// LinkedLibraryID references the library item that inspired the entry.
	LinkedLibraryID string `json:"linkedLibraryId,omitempty"`
	// AIReflection is a legacy annotation. It is displayed but never produced.
	AIReflection string `json:"aiReflection,omitempty"`
}

// MarshalJSON always writes tags as an array.
func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	p := plain(e)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return json.Marshal(p)
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	type plain Entry
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	*e = Entry(p)
	return nil
}

// Blank reports whether content has nothing but whitespace.
func Blank(content string) bool {
	return strings.TrimSpace(content) == ""
}

// Validate checks the entry invariants.
func (e Entry) Validate() error {
	if Blank(e.Content) {
		return ErrEmptyContent
	}
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("journal: invalid entry %q: %w", e.ID, err)
	}
	return nil
}

// DisplayTitle is the title shown in lists.
func (e Entry) DisplayTitle() string {
	if e.Title == "" {
		return UntitledLabel
	}
	return e.Title
}

// Linked reports whether the entry was inspired by a library item.
func (e Entry) Linked() bool {
	return e.LinkedLibraryID != ""
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	c := e
	if e.Tags != nil {
		c.Tags = make([]string, len(e.Tags))
		copy(c.Tags, e.Tags)
	}
	return c
}

// SortByDateDesc orders entries newest first. Ties keep their relative order.
func SortByDateDesc(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date.Time)
	})
}

// Since returns the entries dated at or after cutoff, keeping order.
func Since(entries []Entry, cutoff time.Time) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}
