package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := map[string]time.Duration{
		"7d":        7 * day,
		"2w":        14 * day,
		"1mes 3d":   33 * day,
		"12h":       12 * time.Hour,
		"1 semana":  7 * day,
		"3 días":    3 * day,
		" 1W2D ":    9 * day,
		"1month":    30 * day,
		"1d 1horas": day + time.Hour,
	}
	for in, want := range tests {
		got, err := ParseWindow(in)
		if err != nil {
			t.Fatalf("ParseWindow(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseWindow(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "3 años", "0d", "d"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("ParseWindow(%q) should fail", in)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := map[time.Duration]string{
		0:              "todo",
		day:            "último día",
		7 * day:        "últimos 7 días",
		time.Hour:      "última hora",
		36 * time.Hour: "últimas 36 horas",
	}
	for in, want := range tests {
		if got := Describe(in); got != want {
			t.Fatalf("Describe(%v) = %q, want %q", in, got, want)
		}
	}
}
