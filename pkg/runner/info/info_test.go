package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/store"
)

type staticConfig struct{}

func (staticConfig) BasePath() string { return "/tmp/serenitas" }
func (staticConfig) LogLevel() string { return "debug" }
func (staticConfig) LogFile() string  { return "/tmp/serenitas/serenitas.log" }

func TestInfoReportsCounts(t *testing.T) {
	svc := &app.Service{Gateway: store.NewMemory()}
	if err := svc.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	var buf bytes.Buffer
	i := Info{Config: staticConfig{}, Service: svc, Out: &buf}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"/tmp/serenitas", "serenitas_entries: 0 entries", "serenitas_library: 8 items"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
