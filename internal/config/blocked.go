package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// BlockedSpan is one unavailable date span from the presets file. End may be
// omitted for a single day.
type BlockedSpan struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
	Label string `toml:"label"`

	start time.Time
	end   time.Time
}

type blockedFile struct {
	Blocked []BlockedSpan `toml:"blocked"`
}

// LoadBlockedSpans parses a blocked-dates TOML file:
//
//	[[blocked]]
//	start = "2026-12-24"
//	end = "2026-12-26"
//	label = "office closed"
func LoadBlockedSpans(path string) ([]BlockedSpan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blocked dates: %w", err)
	}
	return ParseBlockedSpans(data)
}

// ParseBlockedSpans parses TOML bytes into validated spans.
func ParseBlockedSpans(data []byte) ([]BlockedSpan, error) {
	var f blockedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse blocked dates: %w", err)
	}
	for i := range f.Blocked {
		b := &f.Blocked[i]
		start, err := time.Parse("2006-01-02", b.Start)
		if err != nil {
			return nil, fmt.Errorf("blocked[%d]: start %q is not a YYYY-MM-DD date", i, b.Start)
		}
		end := start
		if b.End != "" {
			end, err = time.Parse("2006-01-02", b.End)
			if err != nil {
				return nil, fmt.Errorf("blocked[%d]: end %q is not a YYYY-MM-DD date", i, b.End)
			}
		}
		if end.Before(start) {
			return nil, fmt.Errorf("blocked[%d] %q: end precedes start", i, b.Label)
		}
		b.start, b.end = start, end
	}
	return f.Blocked, nil
}

// Predicate folds spans into a day-level blocked-date check.
func Predicate(spans []BlockedSpan) func(time.Time) bool {
	return func(d time.Time) bool {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		for _, b := range spans {
			if !day.Before(b.start) && !day.After(b.end) {
				return true
			}
		}
		return false
	}
}
