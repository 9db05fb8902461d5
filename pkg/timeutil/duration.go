// Package timeutil parses the look-back windows accepted by journal listings.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-zí]+)`)
	units   = map[string]time.Duration{
		"h":       time.Hour,
		"hora":    time.Hour,
		"horas":   time.Hour,
		"d":       day,
		"dia":     day,
		"dias":    day,
		"día":     day,
		"días":    day,
		"day":     day,
		"days":    day,
		"w":       7 * day,
		"sem":     7 * day,
		"semana":  7 * day,
		"semanas": 7 * day,
		"week":    7 * day,
		"weeks":   7 * day,
		"mes":     30 * day,
		"meses":   30 * day,
		"month":   30 * day,
		"months":  30 * day,
	}
)

// ParseWindow reads a look-back window such as "7d", "2w" or "1mes 3d".
// Segments add up; the total must be positive.
func ParseWindow(input string) (time.Duration, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		return 0, fmt.Errorf("empty window")
	}

	var total time.Duration
	for strings.TrimSpace(rest) != "" {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * unit
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}

// Describe renders a window for list headings, in whole days when possible.
func Describe(d time.Duration) string {
	switch {
	case d <= 0:
		return "todo"
	case d%day == 0 && d/day == 1:
		return "último día"
	case d%day == 0:
		return fmt.Sprintf("últimos %d días", d/day)
	case d%time.Hour == 0 && d/time.Hour == 1:
		return "última hora"
	default:
		return fmt.Sprintf("últimas %d horas", d/time.Hour)
	}
}
