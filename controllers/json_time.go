package controllers

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout           = "2006-01-02"
	timestampLayout      = "2006-01-02T15:04:05"
	timestampShortLayout = "2006-01-02T15:04"
	timestampOutLayout   = "2006-01-02T15:04:05.000"
)

// Date is a calendar date rendered as yyyy-MM-dd.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected yyyy-MM-dd: %w", s, err)
	}
	d.Time = t
	return nil
}

// Timestamp accepts yyyy-MM-dd'T'HH:mm with optional seconds on input and
// renders yyyy-MM-dd'T'HH:mm:ss.SSS+00:00 on output. Zone offsets are not
// accepted; values are treated as UTC.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(timestampOutLayout) + `+00:00"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := parseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(timestampShortLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, expected yyyy-MM-dd'T'HH:mm[:ss]", s)
}
