package journal

import (
	"encoding/json"
	"fmt"
	"time"
)

// layoutISO matches the millisecond ISO-8601 form used in the persisted records.
const layoutISO = "2006-01-02T15:04:05.000Z07:00"

// ParseTime parses an ISO-8601 timestamp, with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Timestamp is a UTC instant with millisecond precision.
type Timestamp struct {
	time.Time
}

// At truncates t to the persisted precision.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(layoutISO)
}

// Long renders the date the way the journal list headers show it.
func (t Timestamp) Long() string {
	local := t.Local()
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdays[local.Weekday()], local.Day(), months[local.Month()-1], local.Year())
}

var (
	weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	months   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)
