// Package export dumps both collections in a portable format.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
)

// Format is an export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts yaml, yml or json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("export: unsupported format %q (expected yaml or json)", s)
}

// Document is the exported shape. Entries and library keep storage order.
type Document struct {
	Entries []Entry        `json:"entries" yaml:"entries"`
	Library []library.Item `json:"library" yaml:"library"`
}

// Entry mirrors journal.Entry with yaml tags and a plain string date.
type Entry struct {
	ID              string   `json:"id" yaml:"id"`
	Date            string   `json:"date" yaml:"date"`
	Title           string   `json:"title" yaml:"title"`
	Content         string   `json:"content" yaml:"content"`
	Mood            string   `json:"mood,omitempty" yaml:"mood,omitempty"`
	Tags            []string `json:"tags" yaml:"tags"`
	LinkedLibraryID string   `json:"linkedLibraryId,omitempty" yaml:"linkedLibraryId,omitempty"`
	AIReflection    string   `json:"aiReflection,omitempty" yaml:"aiReflection,omitempty"`
}

func fromEntry(e journal.Entry) Entry {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return Entry{
		ID:              e.ID,
		Date:            e.Date.String(),
		Title:           e.Title,
		Content:         e.Content,
		Mood:            e.Mood,
		Tags:            tags,
		LinkedLibraryID: e.LinkedLibraryID,
		AIReflection:    e.AIReflection,
	}
}

// Export writes the Document to Out, or to File when set.
type Export struct {
	Format  Format
	File    string
	Service *app.Service
	Out     io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	entries, err := n.Service.Entries()
	if err != nil {
		return err
	}
	items, err := n.Service.Library()
	if err != nil {
		return err
	}

	doc := Document{Entries: make([]Entry, 0, len(entries)), Library: items}
	for _, e := range entries {
		doc.Entries = append(doc.Entries, fromEntry(e))
	}

	out := n.Out
	if n.File != "" {
		f, err := os.Create(n.File)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if out == nil {
		out = os.Stdout
	}
	return Encode(out, n.Format, doc)
}

// Encode writes doc to w in format f.
func Encode(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("export: unsupported format %q", f)
}
