package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/staylog/internal/domain"
)

func TestDay_dropsTimeOfDay(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	in := time.Date(2025, 3, 12, 23, 30, 0, 0, berlin)

	got := domain.Day(in)

	assert.Equal(t, domain.Date(2025, time.March, 12), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestDayCount_inclusive(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single day", domain.Date(2025, 6, 12), domain.Date(2025, 6, 12), 1},
		{"jan to mar 11", domain.Date(2025, 1, 1), domain.Date(2025, 3, 11), 70},
		{"leap february", domain.Date(2024, 2, 1), domain.Date(2024, 2, 29), 29},
		{"across new year", domain.Date(2024, 12, 28), domain.Date(2025, 1, 5), 9},
		{"before epoch", domain.Date(1969, 12, 30), domain.Date(1970, 1, 2), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.DayCount(tc.start, tc.end))
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := domain.ParseDate("2025-02-10")
	require.NoError(t, err)
	assert.Equal(t, domain.Date(2025, 2, 10), got)

	got, err = domain.ParseDate("2025-02-10T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, domain.Date(2025, 2, 10), got)

	_, err = domain.ParseDate("10.02.2025")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewDateRange_rejectsReversedBounds(t *testing.T) {
	_, err := domain.NewDateRange(domain.Date(2025, 2, 12), domain.Date(2025, 2, 10))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDateRange_OverlapsAndIntersect(t *testing.T) {
	a := domain.DateRange{Start: domain.Date(2025, 1, 1), End: domain.Date(2025, 3, 11)}
	b := domain.DateRange{Start: domain.Date(2025, 3, 11), End: domain.Date(2025, 3, 20)}
	c := domain.DateRange{Start: domain.Date(2025, 3, 12), End: domain.Date(2025, 3, 20)}

	assert.True(t, a.Overlaps(b), "ranges sharing a boundary day overlap")
	assert.False(t, a.Overlaps(c), "adjacent ranges do not overlap")

	got, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, 1, got.Days())

	_, ok = a.Intersect(c)
	assert.False(t, ok)
}

func TestDateRange_Contains(t *testing.T) {
	r := domain.DateRange{Start: domain.Date(2025, 2, 10), End: domain.Date(2025, 2, 12)}

	assert.True(t, r.Contains(time.Date(2025, 2, 12, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(domain.Date(2025, 2, 13)))
	assert.False(t, r.Contains(domain.Date(2025, 2, 9)))
}
