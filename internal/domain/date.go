package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Day returns midnight UTC of the calendar day t falls on in its own location.
// All dates held by entries are normalised with Day, so two dates compare equal
// exactly when they name the same calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a normalised calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts "2006-01-02" and, for data exported by older clients,
// full RFC 3339 timestamps. The time of day is discarded.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
	}
	return Day(t), nil
}

// DayIndex returns the number of whole days between 1970-01-01 and t's calendar day.
func DayIndex(t time.Time) int {
	return int(Day(t).Unix() / secondsPerDay)
}

// DayCount returns the inclusive number of calendar days from start to end.
// A single-day range counts 1.
func DayCount(start, end time.Time) int {
	return DayIndex(end) - DayIndex(start) + 1
}

// DateRange is an inclusive range of whole calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normalises both bounds to calendar days and rejects ranges
// whose end falls before their start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: Day(start), End: Day(end)}
	if r.Start.IsZero() || r.End.IsZero() {
		return DateRange{}, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	if r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("%w: end date %s is before start date %s",
			ErrValidation, r.End.Format(DateLayout), r.Start.Format(DateLayout))
	}
	return r, nil
}

// YearRange returns 1 January through 31 December of year.
func YearRange(year int) DateRange {
	return DateRange{Start: Date(year, time.January, 1), End: Date(year, time.December, 31)}
}

// Days returns the inclusive day count of the range.
func (r DateRange) Days() int {
	return DayCount(r.Start, r.End)
}

// Contains reports whether the calendar day of t lies inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether the two ranges share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !o.Start.After(r.End)
}

// Intersect returns the days shared by both ranges.
func (r DateRange) Intersect(o DateRange) (DateRange, bool) {
	if !r.Overlaps(o) {
		return DateRange{}, false
	}
	out := r
	if o.Start.After(out.Start) {
		out.Start = o.Start
	}
	if o.End.Before(out.End) {
		out.End = o.End
	}
	return out, true
}

// Equal reports whether both ranges cover exactly the same days.
func (r DateRange) Equal(o DateRange) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}
