package library

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/serenitas/pkg/app"
	lib "tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/store"
)

type firstProvider struct{}

func (firstProvider) PickRandom() lib.Template { return lib.Corpus()[0] }

func service(t *testing.T) *app.Service {
	t.Helper()
	color.NoColor = true
	svc := &app.Service{Gateway: store.NewMemory(), Provider: firstProvider{}}
	if err := svc.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	return svc
}

func TestListJSONFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := List{Category: lib.CategoryPoetry, JSON: true, Service: service(t), Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var items []lib.Item
	if err := json.Unmarshal(buf.Bytes(), &items); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("no poetry in seed")
	}
	for _, it := range items {
		if it.Category != lib.CategoryPoetry {
			t.Fatalf("filter leaked %+v", it)
		}
	}
}

func TestReadAndDiscover(t *testing.T) {
	svc := service(t)
	var buf bytes.Buffer
	if err := (&Read{ID: "3", Service: svc, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(buf.String(), "Epicteto") {
		t.Fatalf("read output = %q", buf.String())
	}

	buf.Reset()
	if err := (&Discover{Service: svc, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Discover: %v", err)
	}
	items, _ := svc.Library()
	if len(items) != 9 || !strings.Contains(buf.String(), items[0].Author) {
		t.Fatalf("discover output = %q", buf.String())
	}
}

func TestReadMissing(t *testing.T) {
	if err := (&Read{ID: "x", Service: service(t), Out: &bytes.Buffer{}}).Do(context.Background()); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}
