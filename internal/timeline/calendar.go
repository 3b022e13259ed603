package timeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/staylog/internal/domain"
)

// ErrInvalidMonth is returned for a month index outside 0–11.
var ErrInvalidMonth = errors.New("month index must be between 0 and 11")

// DayCell is one day of a month grid. Location is nil when no stay covers the day.
type DayCell struct {
	Day      int
	Date     time.Time
	Location *domain.Location
	StayID   uuid.UUID
}

// MonthView is a Monday-first month grid.
type MonthView struct {
	Year       int
	MonthIndex int // 0 = January
	// Leading is the number of empty cells before day 1 in a week starting on Monday.
	Leading int
	Days    []DayCell
	// Legend lists the distinct locations of the month in first-seen order.
	Legend []domain.Location
}

// Month returns the time.Month of the view.
func (m MonthView) Month() time.Month { return time.Month(m.MonthIndex + 1) }

// DaysIn returns the Gregorian length of the month, 28–31.
func DaysIn(year, monthIndex int) int {
	// Day 0 of the next month normalises to the last day of this one.
	return time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOf resolves day of a month grid to a calendar date.
func DateOf(year, monthIndex, day int) (time.Time, error) {
	if monthIndex < 0 || monthIndex > 11 {
		return time.Time{}, ErrInvalidMonth
	}
	if day < 1 || day > DaysIn(year, monthIndex) {
		return time.Time{}, fmt.Errorf("%w: day %d out of range", domain.ErrValidation, day)
	}
	return domain.Date(year, time.Month(monthIndex+1), day), nil
}

// ProjectMonth maps entries onto the days of one month. Each cell takes the
// first stay, in the order given, whose range contains the day.
func ProjectMonth(entries []domain.Entry, year, monthIndex int) (MonthView, error) {
	if monthIndex < 0 || monthIndex > 11 {
		return MonthView{}, ErrInvalidMonth
	}
	first := domain.Date(year, time.Month(monthIndex+1), 1)
	n := DaysIn(year, monthIndex)
	last := first.AddDate(0, 0, n-1)

	var stays []domain.Stay
	for _, s := range domain.StaysOf(entries) {
		if s.Range().Overlaps(domain.DateRange{Start: first, End: last}) {
			stays = append(stays, s)
		}
	}

	view := MonthView{
		Year:       year,
		MonthIndex: monthIndex,
		Leading:    (int(first.Weekday()) + 6) % 7,
		Days:       make([]DayCell, n),
		Legend:     []domain.Location{},
	}
	seen := map[domain.Location]bool{}
	for i := range view.Days {
		date := first.AddDate(0, 0, i)
		cell := DayCell{Day: i + 1, Date: date}
		for _, s := range stays {
			if s.Range().Contains(date) {
				loc := s.Location
				cell.Location = &loc
				cell.StayID = s.ID
				if !seen[loc] {
					seen[loc] = true
					view.Legend = append(view.Legend, loc)
				}
				break
			}
		}
		view.Days[i] = cell
	}
	return view, nil
}

// ProjectYear returns the twelve month grids of year.
func ProjectYear(entries []domain.Entry, year int) []MonthView {
	months := make([]MonthView, 12)
	for m := range months {
		// monthIndex is always in range here.
		months[m], _ = ProjectMonth(entries, year, m)
	}
	return months
}
