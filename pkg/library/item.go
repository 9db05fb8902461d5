package library

import (
	"fmt"

	"tableflip.dev/serenitas/pkg/validate"
)

// Item is a curated excerpt in the user's library.
type Item struct {
	ID         string   `json:"id" yaml:"id" validate:"required"`
	Title      string   `json:"title" yaml:"title" validate:"notblank"`
	Author     string   `json:"author" yaml:"author" validate:"notblank"`
	Content    string   `json:"content" yaml:"content" validate:"notblank"`
	Category   Category `json:"category" yaml:"category" validate:"oneof=Estoicismo Poesía Reflexión Mindfulness"`
	IsFavorite bool     `json:"isFavorite" yaml:"isFavorite"`
}

// Validate checks the item invariants.
func (i Item) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("library: invalid item %q: %w", i.ID, err)
	}
	return nil
}

// Template is a corpus record that has not been assigned an identity yet.
type Template struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
}

// Item materializes the template as a library item that is not a favorite.
func (t Template) Item(id string) Item {
	return Item{
		ID:       id,
		Title:    t.Title,
		Author:   t.Author,
		Content:  t.Content,
		Category: t.Category,
	}
}

// Filter returns the items in category c, keeping order. An empty c keeps all.
func Filter(items []Item, c Category) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if c == "" || it.Category == c {
			out = append(out, it)
		}
	}
	return out
}
