// Package domain contains the core data types for the stay logbook.
// It depends only on the standard library and google/uuid and is imported by
// every other internal package (timeline, repo, service, handler).
package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind tags the variant of a timeline entry.
type Kind string

const (
	KindStay   Kind = "stay"
	KindFlight Kind = "flight"
)

// ParseKind validates a wire value.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindStay, KindFlight:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown entry type %q", ErrValidation, s)
}

// Accommodation describes where a stay was spent.
type Accommodation string

const (
	AccommodationAirbnb Accommodation = "airbnb"
	AccommodationHotel  Accommodation = "hotel"
	AccommodationFriend Accommodation = "friend"
	AccommodationOther  Accommodation = "other"
)

// ParseAccommodation validates a wire value. The empty string means "other".
func ParseAccommodation(s string) (Accommodation, error) {
	a := Accommodation(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case "":
		return AccommodationOther, nil
	case AccommodationAirbnb, AccommodationHotel, AccommodationFriend, AccommodationOther:
		return a, nil
	}
	return "", fmt.Errorf("%w: unknown accommodation type %q", ErrValidation, s)
}

// Location is a free-text city/country pair. Values are compared verbatim
// after trimming surrounding whitespace; no case folding or aliasing happens.
type Location struct {
	City    string
	Country string
}

// Normalize trims surrounding whitespace from both fields.
func (l Location) Normalize() Location {
	return Location{City: strings.TrimSpace(l.City), Country: strings.TrimSpace(l.Country)}
}

// Validate requires both city and country.
func (l Location) Validate() error {
	n := l.Normalize()
	if n.City == "" {
		return fmt.Errorf("%w: city is required", ErrValidation)
	}
	if n.Country == "" {
		return fmt.Errorf("%w: country is required", ErrValidation)
	}
	return nil
}

func (l Location) String() string {
	return l.City + ", " + l.Country
}

// Entry is a Stay or a Flight. The interface is sealed: only the two variants
// in this package implement it, so a type switch over Stay and Flight is exhaustive.
type Entry interface {
	EntryID() uuid.UUID
	Owner() string
	Kind() Kind
	// Start is the first calendar day the entry touches.
	Start() time.Time
	Place() Location
	Validate() error

	isEntry()
}

// Base holds the fields shared by both variants.
type Base struct {
	ID     uuid.UUID
	UserID string
	Location
	Comments  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Base) EntryID() uuid.UUID { return b.ID }
func (b Base) Owner() string      { return b.UserID }
func (b Base) Place() Location    { return b.Location }

// Stay is continuous residence in one place across an inclusive date range.
type Stay struct {
	Base
	StartDate     time.Time
	EndDate       time.Time
	Accommodation Accommodation
}

func (Stay) isEntry()           {}
func (Stay) Kind() Kind         { return KindStay }
func (s Stay) Start() time.Time { return s.StartDate }

// Range returns the days covered by the stay.
func (s Stay) Range() DateRange {
	return DateRange{Start: s.StartDate, End: s.EndDate}
}

// Days is the inclusive number of calendar days of the stay. It is always
// derived from the dates and never stored.
func (s Stay) Days() int {
	return DayCount(s.StartDate, s.EndDate)
}

// Normalize truncates dates to calendar days, fills a missing end date with the
// start date and a missing accommodation with "other", and trims text fields.
func (s Stay) Normalize() Stay {
	s.StartDate = Day(s.StartDate)
	if s.EndDate.IsZero() {
		s.EndDate = s.StartDate
	} else {
		s.EndDate = Day(s.EndDate)
	}
	if s.Accommodation == "" {
		s.Accommodation = AccommodationOther
	}
	s.Location = s.Location.Normalize()
	s.Comments = strings.TrimSpace(s.Comments)
	return s
}

// Validate enforces the stay's own invariants. Overlap with other stays is a
// collection-level concern and is checked by the timeline package.
func (s Stay) Validate() error {
	if err := s.Location.Validate(); err != nil {
		return err
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if !s.EndDate.IsZero() && Day(s.EndDate).Before(Day(s.StartDate)) {
		return fmt.Errorf("%w: end_date must not be before date", ErrValidation)
	}
	if _, err := ParseAccommodation(string(s.Accommodation)); err != nil {
		return err
	}
	return nil
}

// Flight is a point-in-time transit record. It never counts towards residence.
type Flight struct {
	Base
	Date         time.Time
	FlightNumber string
	Departure    string
	Arrival      string
}

func (Flight) isEntry()           {}
func (Flight) Kind() Kind         { return KindFlight }
func (f Flight) Start() time.Time { return f.Date }

// Normalize truncates the date and trims text fields.
func (f Flight) Normalize() Flight {
	f.Date = Day(f.Date)
	f.Location = f.Location.Normalize()
	f.FlightNumber = strings.TrimSpace(f.FlightNumber)
	f.Departure = strings.TrimSpace(f.Departure)
	f.Arrival = strings.TrimSpace(f.Arrival)
	f.Comments = strings.TrimSpace(f.Comments)
	return f
}

func (f Flight) Validate() error {
	if err := f.Location.Validate(); err != nil {
		return err
	}
	if f.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	return nil
}

// Normalize dispatches to the variant's Normalize.
func Normalize(e Entry) Entry {
	switch v := e.(type) {
	case Stay:
		return v.Normalize()
	case Flight:
		return v.Normalize()
	}
	return e
}

// WithBase returns e with its shared fields replaced by b.
func WithBase(e Entry, b Base) Entry {
	switch v := e.(type) {
	case Stay:
		v.Base = b
		return v
	case Flight:
		v.Base = b
		return v
	}
	return e
}

// BaseOf returns the shared fields of e.
func BaseOf(e Entry) Base {
	switch v := e.(type) {
	case Stay:
		return v.Base
	case Flight:
		return v.Base
	}
	return Base{}
}

// SortEntries orders entries by start date ascending. Stays come before flights
// on the same day; remaining ties are broken by ID so the order is stable
// across reloads.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Start().Equal(b.Start()) {
			return a.Start().Before(b.Start())
		}
		if a.Kind() != b.Kind() {
			return a.Kind() == KindStay
		}
		return a.EntryID().String() < b.EntryID().String()
	})
}

// StaysOf filters the stays out of entries, preserving order.
func StaysOf(entries []Entry) []Stay {
	out := make([]Stay, 0, len(entries))
	for _, e := range entries {
		if s, ok := e.(Stay); ok {
			out = append(out, s)
		}
	}
	return out
}

// ChangeSet lists the writes that persist one mutation of a user's entries.
// Deletes are applied before upserts.
type ChangeSet struct {
	Upserts []Entry
	Deletes []uuid.UUID
}

// Empty reports whether nothing needs to be written.
func (c ChangeSet) Empty() bool {
	return len(c.Upserts) == 0 && len(c.Deletes) == 0
}
