// Package library defines curated quote records, the seed set and the
// discovery corpus they are drawn from.
package library

import (
	"fmt"
	"strings"
)

// Category classifies a library item. The value is the persisted display label.
type Category string

const (
	// CategoryStoicism groups stoic philosophy excerpts.
	CategoryStoicism Category = "Estoicismo"
	// CategoryPoetry groups verse.
	CategoryPoetry Category = "Poesía"
	// CategoryReflection groups essays and general philosophy.
	CategoryReflection Category = "Reflexión"
	// CategoryMindfulness groups contemplative and taoist texts.
	CategoryMindfulness Category = "Mindfulness"
)

// AllCategories returns the supported categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryStoicism,
		CategoryPoetry,
		CategoryReflection,
		CategoryMindfulness,
	}
}

var categoryAliases = map[string]Category{
	"stoicism":    CategoryStoicism,
	"poetry":      CategoryPoetry,
	"reflection":  CategoryReflection,
	"mindfulness": CategoryMindfulness,
}

// ParseCategory accepts a display label or its English name, case-insensitively.
func ParseCategory(raw string) (Category, error) {
	s := strings.TrimSpace(raw)
	for _, c := range AllCategories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	if c, ok := categoryAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("library: unknown category %q", raw)
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	for _, candidate := range AllCategories() {
		if candidate == c {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
