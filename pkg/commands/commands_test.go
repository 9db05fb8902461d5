package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestSubcommandsRegistered(t *testing.T) {
	root := New()
	want := []string{"ui", "journal", "write", "library", "discover", "read", "report", "export", "info", "mcp", "completion", "upgrade", "version"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	root := New()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestWriteThenExport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SERENITAS_PATH", filepath.Join(dir, "db"))
	t.Setenv("SERENITAS_LOG_FILE", filepath.Join(dir, "serenitas.log"))

	run(t, "", "write", "--reflect-on", "3", "Lo que depende de mí")
	run(t, "Hoy fue un buen día\n", "write")

	var doc struct {
		Entries []struct {
			Title           string `json:"title"`
			Content         string `json:"content"`
			LinkedLibraryID string `json:"linkedLibraryId"`
		} `json:"entries"`
		Library []struct {
			ID string `json:"id"`
		} `json:"library"`
	}
	if err := json.Unmarshal([]byte(run(t, "", "export", "-o", "json")), &doc); err != nil {
		t.Fatalf("export json: %v", err)
	}
	if len(doc.Entries) != 2 || len(doc.Library) != 8 {
		t.Fatalf("export = %+v", doc)
	}
	if doc.Entries[0].Content != "Hoy fue un buen día" || doc.Entries[0].Title != "Pensamiento del día" {
		t.Fatalf("newest entry = %+v", doc.Entries[0])
	}
	if doc.Entries[1].LinkedLibraryID != "3" || doc.Entries[1].Title != "Reflexión: Manual de Vida (Enquiridión)" {
		t.Fatalf("reflection entry = %+v", doc.Entries[1])
	}
}

func TestVersion(t *testing.T) {
	out := run(t, "", "version", "-o", "json")
	if !strings.Contains(out, "dev") {
		t.Fatalf("version output = %q", out)
	}
}
