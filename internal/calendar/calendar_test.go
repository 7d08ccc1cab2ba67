package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayStripsClockAndZone(t *testing.T) {
	zone := time.FixedZone("X", 3*3600)
	in := time.Date(2026, time.January, 5, 23, 59, 58, 7, zone)
	got := Day(in)
	want := date(2026, time.January, 5)
	if !got.Equal(want) {
		t.Errorf("Day = %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("Day location = %v, want UTC", got.Location())
	}
}

func TestComparisonsAtDayPrecision(t *testing.T) {
	morning := time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.January, 5, 20, 0, 0, 0, time.UTC)
	if !SameDay(morning, evening) {
		t.Error("SameDay rejected two times on one day")
	}
	if Before(morning, evening) || After(evening, morning) {
		t.Error("Before/After compared clock time, not days")
	}
	if !Before(morning, date(2026, time.January, 6)) {
		t.Error("Before rejected an earlier day")
	}
}

func TestWithinRangeInclusive(t *testing.T) {
	start, end := date(2026, time.January, 5), date(2026, time.January, 9)
	for _, d := range []time.Time{start, date(2026, time.January, 7), end} {
		if !WithinRange(d, start, end) {
			t.Errorf("WithinRange(%v) = false, want true", d)
		}
	}
	if WithinRange(date(2026, time.January, 4), start, end) {
		t.Error("WithinRange accepted a day before start")
	}
	if WithinRange(date(2026, time.January, 10), start, end) {
		t.Error("WithinRange accepted a day after end")
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b time.Time
		want int
	}{
		{date(2026, time.January, 1), date(2026, time.January, 1), 0},
		{date(2026, time.January, 1), date(2026, time.January, 10), 9},
		{date(2026, time.January, 10), date(2026, time.January, 1), -9},
		{date(2026, time.February, 27), date(2026, time.March, 2), 3},
	}
	for _, tc := range cases {
		if got := DaysBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	cases := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{date(2026, time.January, 31), 1, date(2026, time.February, 28)},
		{date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{date(2026, time.January, 15), 1, date(2026, time.February, 15)},
		{date(2026, time.March, 31), -1, date(2026, time.February, 28)},
		{date(2026, time.January, 31), 12, date(2027, time.January, 31)},
	}
	for _, tc := range cases {
		if got := AddMonths(tc.in, tc.n); !got.Equal(tc.want) {
			t.Errorf("AddMonths(%v, %d) = %v, want %v", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestAddYearsClampsLeapDay(t *testing.T) {
	if got := AddYears(date(2024, time.February, 29), 1); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("AddYears(2024-02-29, 1) = %v, want 2025-02-28", got)
	}
}

func TestMonthBounds(t *testing.T) {
	if got := StartOfMonth(date(2026, time.February, 17)); !got.Equal(date(2026, time.February, 1)) {
		t.Errorf("StartOfMonth = %v", got)
	}
	if got := EndOfMonth(date(2026, time.February, 17)); !got.Equal(date(2026, time.February, 28)) {
		t.Errorf("EndOfMonth = %v", got)
	}
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Errorf("DaysInMonth(2024, Feb) = %d, want 29", got)
	}
	if got := DaysInMonth(2026, time.December); got != 31 {
		t.Errorf("DaysInMonth(2026, Dec) = %d, want 31", got)
	}
}

func TestWeekBounds(t *testing.T) {
	// 2026-01-01 is a Thursday.
	thu := date(2026, time.January, 1)
	if got := StartOfWeek(thu, time.Monday); !got.Equal(date(2025, time.December, 29)) {
		t.Errorf("StartOfWeek mon-first = %v, want 2025-12-29", got)
	}
	if got := StartOfWeek(thu, time.Sunday); !got.Equal(date(2025, time.December, 28)) {
		t.Errorf("StartOfWeek sun-first = %v, want 2025-12-28", got)
	}
	if got := EndOfWeek(thu, time.Monday); !got.Equal(date(2026, time.January, 4)) {
		t.Errorf("EndOfWeek mon-first = %v, want 2026-01-04", got)
	}
	mon := date(2025, time.December, 29)
	if got := StartOfWeek(mon, time.Monday); !got.Equal(mon) {
		t.Errorf("StartOfWeek on the first weekday = %v, want itself", got)
	}
}

func TestEachDay(t *testing.T) {
	days := EachDay(date(2026, time.January, 30), date(2026, time.February, 2))
	if len(days) != 4 {
		t.Fatalf("len = %d, want 4", len(days))
	}
	if !days[0].Equal(date(2026, time.January, 30)) || !days[3].Equal(date(2026, time.February, 2)) {
		t.Errorf("bounds = %v..%v", days[0], days[3])
	}
	if got := EachDay(date(2026, time.January, 2), date(2026, time.January, 1)); got != nil {
		t.Errorf("inverted interval = %v, want nil", got)
	}
	if got := EachDay(date(2026, time.January, 1), date(2026, time.January, 1)); len(got) != 1 {
		t.Errorf("single-day interval len = %d, want 1", len(got))
	}
}

func TestWeekdayLabels(t *testing.T) {
	got := WeekdayLabels(time.Monday)
	want := []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
	if sun := WeekdayLabels(time.Sunday); sun[0] != "Su" || sun[6] != "Sa" {
		t.Errorf("sunday-first labels = %v", sun)
	}
}

func TestParseStrict(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"05/01/2026", true, date(2026, time.January, 5)},
		{" 05/01/2026 ", true, date(2026, time.January, 5)},
		{"5/1/2026", false, time.Time{}},
		{"05/01/26", false, time.Time{}},
		{"31/02/2026", false, time.Time{}},
		{"", false, time.Time{}},
		{"garbage", false, time.Time{}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in, "02/01/2006")
		if tc.ok != (err == nil) {
			t.Errorf("Parse(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && !got.Equal(tc.want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if Valid("40/01/2026", "02/01/2006") {
		t.Error("Valid accepted an impossible day")
	}
}

func TestMatchMonth(t *testing.T) {
	cases := []struct {
		in   string
		want time.Month
		ok   bool
	}{
		{"jan", time.January, true},
		{"January", time.January, true},
		{"Febuary", time.February, true},
		{"ju", time.June, true},
		{"sept", time.September, true},
		{"dec", time.December, true},
		{"xyzzy", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := MatchMonth(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("MatchMonth(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
