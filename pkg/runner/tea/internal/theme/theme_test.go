package theme

import (
	"testing"

	"tableflip.dev/serenitas/pkg/library"
)

func TestCategoryAccentsAreDistinct(t *testing.T) {
	accents := CategoryAccents()
	if len(accents) != len(library.AllCategories()) {
		t.Fatalf("got %d accents", len(accents))
	}
	seen := map[string]library.Category{}
	for c, hex := range accents {
		if len(hex) != 7 || hex[0] != '#' {
			t.Fatalf("accent for %s = %q", c, hex)
		}
		if other, dup := seen[hex]; dup {
			t.Fatalf("%s and %s share %s", c, other, hex)
		}
		seen[hex] = c
	}
}

func TestUnknownCategoryFallsBack(t *testing.T) {
	th := New(true)
	if got := th.Category("Jazz").Render("x"); got == "" {
		t.Fatalf("fallback style rendered nothing")
	}
}
