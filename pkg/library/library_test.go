package library

import (
	"math/rand/v2"
	"testing"
)

func TestCorpusCoversEveryCategory(t *testing.T) {
	all := Corpus()
	if len(all) < 20 {
		t.Fatalf("expected at least 20 corpus records, got %d", len(all))
	}
	seen := make(map[Category]int)
	for _, tpl := range all {
		if !tpl.Category.Valid() {
			t.Fatalf("corpus record %q has invalid category %q", tpl.Title, tpl.Category)
		}
		seen[tpl.Category]++
	}
	for _, c := range AllCategories() {
		if seen[c] == 0 {
			t.Fatalf("no corpus records for %s", c)
		}
	}
}

func TestSeedItemsAreValidAndUnique(t *testing.T) {
	items := Seed()
	if len(items) != 8 {
		t.Fatalf("expected 8 seed items, got %d", len(items))
	}
	ids := make(map[string]struct{}, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			t.Fatalf("seed item invalid: %v", err)
		}
		if _, dup := ids[it.ID]; dup {
			t.Fatalf("duplicate seed id %q", it.ID)
		}
		ids[it.ID] = struct{}{}
	}
	if items[2].Title != "Manual de Vida (Enquiridión)" {
		t.Fatalf("unexpected seed item 3: %q", items[2].Title)
	}
}

func TestSeedReturnsCopy(t *testing.T) {
	a := Seed()
	a[0].Title = "changed"
	if b := Seed(); b[0].Title == "changed" {
		t.Fatalf("Seed must not share backing storage")
	}
}

func TestProviderIsDeterministicForSource(t *testing.T) {
	p1 := NewProvider(rand.NewPCG(7, 11))
	p2 := NewProvider(rand.NewPCG(7, 11))
	for i := 0; i < 10; i++ {
		a, b := p1.PickRandom(), p2.PickRandom()
		if a != b {
			t.Fatalf("draw %d differs: %q vs %q", i, a.Title, b.Title)
		}
	}
}

func TestProviderDrawsFromCorpus(t *testing.T) {
	known := make(map[Template]struct{})
	for _, tpl := range Corpus() {
		known[tpl] = struct{}{}
	}
	p := NewProvider(nil)
	for i := 0; i < 50; i++ {
		if _, ok := known[p.PickRandom()]; !ok {
			t.Fatalf("draw %d not from corpus", i)
		}
	}
}

func TestTemplateItemIsNotFavorite(t *testing.T) {
	it := Corpus()[0].Item("42")
	if it.ID != "42" || it.IsFavorite {
		t.Fatalf("unexpected item %+v", it)
	}
	if err := it.Validate(); err != nil {
		t.Fatalf("materialized item invalid: %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "Estoicismo", want: CategoryStoicism},
		{in: "poesía", want: CategoryPoetry},
		{in: "Reflection", want: CategoryReflection},
		{in: " mindfulness ", want: CategoryMindfulness},
		{in: "cooking", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseCategory(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	it := Seed()[0]
	it.Category = "Cocina"
	if err := it.Validate(); err == nil {
		t.Fatalf("expected validation error for unknown category")
	}
}

func TestFilter(t *testing.T) {
	items := Seed()
	poetry := Filter(items, CategoryPoetry)
	if len(poetry) != 2 || poetry[0].ID != "6" || poetry[1].ID != "8" {
		t.Fatalf("unexpected poetry filter result: %+v", poetry)
	}
	if got := Filter(items, ""); len(got) != len(items) {
		t.Fatalf("empty filter should keep all, got %d", len(got))
	}
}
