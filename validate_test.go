package datepicker

import (
	"testing"
	"time"
)

func testConstraints(opts Options) constraints {
	return opts.normalize(date(2026, time.January, 1)).constraints()
}

func TestClassifyDate(t *testing.T) {
	jan5 := date(2026, time.January, 5)
	tests := []struct {
		name      string
		day       time.Time
		opts      Options
		committed *time.Time
		want      Reason
		wantOK    bool
	}{
		{
			name:   "clean date",
			day:    date(2026, time.January, 10),
			opts:   Options{},
			wantOK: true,
		},
		{
			name: "before min date",
			day:  date(2026, time.January, 4),
			opts: Options{MinDate: jan5},
			want: ReasonLessThanMinDate,
		},
		{
			name:   "min date itself is selectable",
			day:    jan5,
			opts:   Options{MinDate: jan5},
			wantOK: true,
		},
		{
			name: "after max date",
			day:  date(2026, time.February, 1),
			opts: Options{MaxDate: date(2026, time.January, 31)},
			want: ReasonGreaterThanMaxDate,
		},
		{
			name:   "max date itself is selectable",
			day:    date(2026, time.January, 31),
			opts:   Options{MaxDate: date(2026, time.January, 31)},
			wantOK: true,
		},
		{
			name: "blocked by explicit set",
			day:  jan5,
			opts: Options{UnavailableDates: []time.Time{jan5}},
			want: ReasonBlockedDate,
		},
		{
			name: "blocked by predicate",
			day:  date(2026, time.January, 11), // a Sunday
			opts: Options{Unavailable: func(d time.Time) bool { return d.Weekday() == time.Sunday }},
			want: ReasonBlockedDate,
		},
		{
			name:      "beyond fix range forward",
			day:       date(2026, time.January, 20),
			opts:      Options{FixRangeDays: 7},
			committed: &jan5,
			want:      ReasonViolatesFixRange,
		},
		{
			name:      "beyond fix range backward",
			day:       date(2025, time.December, 20),
			opts:      Options{FixRangeDays: 7},
			committed: &jan5,
			want:      ReasonViolatesFixRange,
		},
		{
			name:      "on fix range boundary",
			day:       date(2026, time.January, 12),
			opts:      Options{FixRangeDays: 7},
			committed: &jan5,
			wantOK:    true,
		},
		{
			name:   "fix range ignored without committed endpoint",
			day:    date(2026, time.June, 1),
			opts:   Options{FixRangeDays: 7},
			wantOK: true,
		},
		{
			name: "min date outranks blocked",
			day:  date(2026, time.January, 2),
			opts: Options{MinDate: jan5, UnavailableDates: []time.Time{date(2026, time.January, 2)}},
			want: ReasonLessThanMinDate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyDate(tt.day, testConstraints(tt.opts), tt.committed)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("classifyDate = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("classifyDate = nil, want %s", tt.want)
			}
			if err.Reason != tt.want {
				t.Errorf("reason = %s, want %s", err.Reason, tt.want)
			}
		})
	}
}

func TestClassifyRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		opts       Options
		want       Reason
		wantOK     bool
	}{
		{
			name:   "clean range",
			start:  date(2026, time.January, 1),
			end:    date(2026, time.January, 10),
			opts:   Options{},
			wantOK: true,
		},
		{
			name:  "span equal to minimum is too short",
			start: date(2026, time.January, 1),
			end:   date(2026, time.January, 3),
			opts:  Options{MinRangeDays: 2},
			want:  ReasonLessThanMinRange,
		},
		{
			name:   "span one past minimum is accepted",
			start:  date(2026, time.January, 1),
			end:    date(2026, time.January, 4),
			opts:   Options{MinRangeDays: 2},
			wantOK: true,
		},
		{
			name:  "span beyond maximum",
			start: date(2026, time.January, 1),
			end:   date(2026, time.January, 20),
			opts:  Options{MaxRangeDays: 10},
			want:  ReasonGreaterThanMaxRange,
		},
		{
			name:   "span at maximum is accepted",
			start:  date(2026, time.January, 1),
			end:    date(2026, time.January, 11),
			opts:   Options{MaxRangeDays: 10},
			wantOK: true,
		},
		{
			// The error fires when any day inside the inclusive interval is
			// blocked; this pins the intended reading of the source's
			// inverted condition.
			name:  "blocked day inside interval",
			start: date(2026, time.January, 1),
			end:   date(2026, time.January, 10),
			opts:  Options{UnavailableDates: []time.Time{date(2026, time.January, 5)}},
			want:  ReasonContainsBlockedDate,
		},
		{
			name:   "blocked day outside interval",
			start:  date(2026, time.January, 1),
			end:    date(2026, time.January, 10),
			opts:   Options{UnavailableDates: []time.Time{date(2026, time.January, 15)}},
			wantOK: true,
		},
		{
			name:  "min range outranks blocked interval",
			start: date(2026, time.January, 1),
			end:   date(2026, time.January, 2),
			opts:  Options{MinRangeDays: 3, UnavailableDates: []time.Time{date(2026, time.January, 2)}},
			want:  ReasonLessThanMinRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyRange(tt.start, tt.end, testConstraints(tt.opts))
			if tt.wantOK {
				if err != nil {
					t.Fatalf("classifyRange = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("classifyRange = nil, want %s", tt.want)
			}
			if err.Reason != tt.want {
				t.Errorf("reason = %s, want %s", err.Reason, tt.want)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		opts  Options
		valid bool
	}{
		{name: "empty range", r: Range{}, opts: Options{}, valid: true},
		{
			name:  "single start",
			r:     Range{Start: dateP(2026, time.January, 5)},
			opts:  Options{},
			valid: true,
		},
		{
			name:  "single end",
			r:     Range{End: dateP(2026, time.January, 5)},
			opts:  Options{},
			valid: true,
		},
		{
			name:  "ordered pair",
			r:     Range{Start: dateP(2026, time.January, 5), End: dateP(2026, time.January, 9)},
			opts:  Options{},
			valid: true,
		},
		{
			name:  "inverted pair",
			r:     Range{Start: dateP(2026, time.January, 9), End: dateP(2026, time.January, 5)},
			opts:  Options{},
			valid: false,
		},
		{
			name:  "same day pair",
			r:     Range{Start: dateP(2026, time.January, 5), End: dateP(2026, time.January, 5)},
			opts:  Options{},
			valid: true,
		},
		{
			name:  "endpoint before min date",
			r:     Range{Start: dateP(2025, time.December, 30), End: dateP(2026, time.January, 5)},
			opts:  Options{MinDate: date(2026, time.January, 1)},
			valid: false,
		},
		{
			name:  "blocked interior day",
			r:     Range{Start: dateP(2026, time.January, 1), End: dateP(2026, time.January, 10)},
			opts:  Options{UnavailableDates: []time.Time{date(2026, time.January, 5)}},
			valid: false,
		},
		{
			name:  "span too short",
			r:     Range{Start: dateP(2026, time.January, 1), End: dateP(2026, time.January, 2)},
			opts:  Options{MinRangeDays: 2},
			valid: false,
		},
		{
			name:  "endpoints beyond fix range of each other",
			r:     Range{Start: dateP(2026, time.January, 1), End: dateP(2026, time.January, 20)},
			opts:  Options{FixRangeDays: 7},
			valid: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateRange(tt.r, testConstraints(tt.opts)); got != tt.valid {
				t.Errorf("validateRange = %v, want %v", got, tt.valid)
			}
		})
	}
}
