package timeline_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/timeline"
)

// ---- helpers ---------------------------------------------------------------

var (
	chiangRai = domain.Location{City: "Chiang Rai", Country: "Thailand"}
	sofia     = domain.Location{City: "Sofia", Country: "Bulgaria"}
	frankfurt = domain.Location{City: "Frankfurt", Country: "Deutschland"}
)

func day(m time.Month, d int) time.Time { return domain.Date(2025, m, d) }

func span(start, end time.Time) domain.DateRange {
	return domain.DateRange{Start: start, End: end}
}

func stay(loc domain.Location, start, end time.Time) domain.Stay {
	return domain.Stay{
		Base:          domain.Base{ID: uuid.New(), Location: loc},
		StartDate:     start,
		EndDate:       end,
		Accommodation: domain.AccommodationOther,
	}
}

// thailandWinter is the Jan 1–Mar 11 stay used across the scenarios.
func thailandWinter() domain.Stay {
	return stay(chiangRai, day(time.January, 1), day(time.March, 11))
}

func assertNoOverlap(t *testing.T, c *timeline.Collection) {
	t.Helper()
	require.NoError(t, c.Validate())
	stays := c.Stays()
	for i := range stays {
		for j := i + 1; j < len(stays); j++ {
			assert.False(t, stays[i].Range().Overlaps(stays[j].Range()),
				"%s overlaps %s", stays[i].Range(), stays[j].Range())
		}
	}
}

func assertSorted(t *testing.T, c *timeline.Collection) {
	t.Helper()
	entries := c.Entries()
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Start().Before(entries[i-1].Start()), "entry %d out of order", i)
	}
}

// ---- SetLocation -------------------------------------------------------------

func TestSetLocation_ReplaceRemovesWholeIntersectingStay(t *testing.T) {
	old := thailandWinter()
	c := timeline.New([]domain.Entry{old})

	change, err := c.SetLocation(span(day(time.February, 10), day(time.February, 12)), sofia, "")

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{old.ID}, change.Deletes)
	require.Len(t, change.Upserts, 1)

	stays := c.Stays()
	require.Len(t, stays, 1, "the Jan 1–Mar 11 stay is removed entirely")
	assert.Equal(t, sofia, stays[0].Location)
	assert.Equal(t, day(time.February, 10), stays[0].StartDate)
	assert.Equal(t, day(time.February, 12), stays[0].EndDate)
	assert.Equal(t, 3, stays[0].Days())
	assert.Equal(t, domain.AccommodationOther, stays[0].Accommodation)
	assert.NotEqual(t, uuid.Nil, stays[0].ID)
}

func TestSetLocation_ClipSplitsContainingStay(t *testing.T) {
	old := thailandWinter()
	c := timeline.New([]domain.Entry{old}, timeline.WithPolicy(timeline.PolicyClip))

	change, err := c.SetLocation(span(day(time.February, 10), day(time.February, 12)), sofia, domain.AccommodationHotel)

	require.NoError(t, err)
	assert.Empty(t, change.Deletes)
	assert.Len(t, change.Upserts, 3)

	stays := c.Stays()
	require.Len(t, stays, 3)
	assert.Equal(t, old.ID, stays[0].ID, "left part keeps the original ID")
	assert.Equal(t, span(day(time.January, 1), day(time.February, 9)), stays[0].Range())
	assert.Equal(t, sofia, stays[1].Location)
	assert.Equal(t, domain.AccommodationHotel, stays[1].Accommodation)
	assert.Equal(t, span(day(time.February, 13), day(time.March, 11)), stays[2].Range())
	assert.NotEqual(t, old.ID, stays[2].ID)
	assert.Equal(t, chiangRai, stays[2].Location)
	assert.Equal(t, 70, stays[0].Days()+stays[1].Days()+stays[2].Days())
	assertNoOverlap(t, c)
}

func TestSetLocation_ClipTrimsPartialOverlap(t *testing.T) {
	old := thailandWinter()
	c := timeline.New([]domain.Entry{old}, timeline.WithPolicy(timeline.PolicyClip))

	_, err := c.SetLocation(span(day(time.March, 1), day(time.March, 20)), frankfurt, "")

	require.NoError(t, err)
	stays := c.Stays()
	require.Len(t, stays, 2)
	assert.Equal(t, span(day(time.January, 1), day(time.February, 28)), stays[0].Range())
	assert.Equal(t, span(day(time.March, 1), day(time.March, 20)), stays[1].Range())
}

func TestSetLocation_SingleDay(t *testing.T) {
	c := timeline.New(nil)

	_, err := c.SetLocation(span(day(time.June, 12), day(time.June, 12)), frankfurt, "")

	require.NoError(t, err)
	require.Len(t, c.Stays(), 1)
	assert.Equal(t, 1, c.Stays()[0].Days())
}

func TestSetLocation_RejectsReversedRange(t *testing.T) {
	c := timeline.New(nil)

	_, err := c.SetLocation(span(day(time.June, 12), day(time.June, 10)), frankfurt, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, c.Len())
}

func TestSetLocation_RejectsMissingCity(t *testing.T) {
	c := timeline.New([]domain.Entry{thailandWinter()})

	_, err := c.SetLocation(span(day(time.June, 1), day(time.June, 3)), domain.Location{Country: "Bulgaria"}, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, c.Len(), "collection is left unchanged")
}

func TestSetLocation_Idempotent(t *testing.T) {
	for _, p := range []timeline.Policy{timeline.PolicyReplace, timeline.PolicyClip} {
		t.Run(p.String(), func(t *testing.T) {
			c := timeline.New([]domain.Entry{thailandWinter()}, timeline.WithPolicy(p))
			r := span(day(time.February, 10), day(time.February, 12))

			_, err := c.SetLocation(r, sofia, "")
			require.NoError(t, err)
			once := c.Entries()

			change, err := c.SetLocation(r, sofia, "")
			require.NoError(t, err)

			assert.True(t, change.Empty())
			assert.Equal(t, once, c.Entries())
		})
	}
}

func TestSetLocation_SameRangeNewPlaceKeepsID(t *testing.T) {
	c := timeline.New(nil)
	r := span(day(time.February, 10), day(time.February, 12))
	_, err := c.SetLocation(r, sofia, "")
	require.NoError(t, err)
	id := c.Stays()[0].ID

	change, err := c.SetLocation(r, frankfurt, "")

	require.NoError(t, err)
	assert.Empty(t, change.Deletes)
	require.Len(t, c.Stays(), 1)
	assert.Equal(t, id, c.Stays()[0].ID)
	assert.Equal(t, frankfurt, c.Stays()[0].Location)
}

func TestSetLocation_FlightsSurvive(t *testing.T) {
	flight := domain.Flight{
		Base: domain.Base{ID: uuid.New(), Location: sofia},
		Date: day(time.February, 11),
	}
	c := timeline.New([]domain.Entry{thailandWinter(), flight})

	_, err := c.SetLocation(span(day(time.February, 10), day(time.February, 12)), sofia, "")

	require.NoError(t, err)
	got, ok := c.Get(flight.ID)
	require.True(t, ok)
	assert.Equal(t, domain.KindFlight, got.Kind())
}

func TestSetLocation_StampsOwner(t *testing.T) {
	c := timeline.New(nil, timeline.WithOwner("user-1"))

	change, err := c.SetLocation(span(day(time.May, 1), day(time.May, 2)), sofia, "")

	require.NoError(t, err)
	assert.Equal(t, "user-1", change.Upserts[0].Owner())
}

// ---- DeleteRange -------------------------------------------------------------

func TestDeleteRange_RemovesIntersectingStays(t *testing.T) {
	a := thailandWinter()
	b := stay(frankfurt, day(time.March, 12), day(time.April, 7))
	c := timeline.New([]domain.Entry{a, b})

	change, err := c.DeleteRange(span(day(time.March, 11), day(time.March, 12)))

	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, change.Deletes)
	assert.Zero(t, c.Len())
}

func TestDeleteRange_NoIntersectionIsNoOp(t *testing.T) {
	c := timeline.New([]domain.Entry{thailandWinter()})

	change, err := c.DeleteRange(span(day(time.July, 1), day(time.July, 31)))

	require.NoError(t, err)
	assert.True(t, change.Empty())
	assert.Equal(t, 1, c.Len())
}

func TestDeleteRange_ClipKeepsRemainders(t *testing.T) {
	old := thailandWinter()
	c := timeline.New([]domain.Entry{old}, timeline.WithPolicy(timeline.PolicyClip))

	change, err := c.DeleteRange(span(day(time.February, 1), day(time.February, 28)))

	require.NoError(t, err)
	assert.Empty(t, change.Deletes)
	stays := c.Stays()
	require.Len(t, stays, 2)
	assert.Equal(t, 31, stays[0].Days())
	assert.Equal(t, 11, stays[1].Days())
}

// ---- manual CRUD -------------------------------------------------------------

func TestAdd_RejectsOverlappingStay(t *testing.T) {
	c := timeline.New([]domain.Entry{thailandWinter()})
	overlapping := stay(sofia, day(time.March, 11), day(time.March, 14))
	overlapping.ID = uuid.Nil

	_, err := c.Add(overlapping)

	assert.ErrorIs(t, err, domain.ErrOverlap)
	assert.Equal(t, 1, c.Len(), "collection is left unchanged")
}

func TestAdd_AssignsIDAndSorts(t *testing.T) {
	c := timeline.New([]domain.Entry{stay(frankfurt, day(time.March, 12), day(time.April, 7))})
	early := domain.Stay{
		Base:      domain.Base{Location: chiangRai},
		StartDate: day(time.January, 1),
	}

	change, err := c.Add(early)

	require.NoError(t, err)
	require.Len(t, change.Upserts, 1)
	assert.NotEqual(t, uuid.Nil, change.Upserts[0].EntryID())
	assert.Equal(t, change.Upserts[0].EntryID(), c.Entries()[0].EntryID())
	assertSorted(t, c)
}

func TestAdd_FlightMayShareDayWithStay(t *testing.T) {
	c := timeline.New([]domain.Entry{thailandWinter()})

	_, err := c.Add(domain.Flight{Base: domain.Base{Location: sofia}, Date: day(time.February, 1)})

	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestUpdate_NotFound(t *testing.T) {
	c := timeline.New(nil)

	_, err := c.Update(stay(sofia, day(time.May, 1), day(time.May, 2)))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_CanChangeVariant(t *testing.T) {
	s := thailandWinter()
	created := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	s.CreatedAt = created
	c := timeline.New([]domain.Entry{s})

	_, err := c.Update(domain.Flight{Base: domain.Base{ID: s.ID, Location: sofia}, Date: day(time.January, 4)})

	require.NoError(t, err)
	got, ok := c.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, domain.KindFlight, got.Kind())
	assert.Equal(t, created, domain.BaseOf(got).CreatedAt)
}

func TestUpdate_RejectsOverlap(t *testing.T) {
	a := thailandWinter()
	b := stay(frankfurt, day(time.March, 12), day(time.April, 7))
	c := timeline.New([]domain.Entry{a, b})

	moved := b
	moved.StartDate = day(time.March, 1)
	_, err := c.Update(moved)

	assert.ErrorIs(t, err, domain.ErrOverlap)
	got, _ := c.Get(b.ID)
	assert.Equal(t, day(time.March, 12), got.Start())
}

func TestRemove(t *testing.T) {
	s := thailandWinter()
	c := timeline.New([]domain.Entry{s})

	change, err := c.Remove(s.ID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{s.ID}, change.Deletes)
	assert.Zero(t, c.Len())

	_, err = c.Remove(s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- FillGaps ----------------------------------------------------------------

func TestFillGaps_FillsEachUncoveredRun(t *testing.T) {
	c := timeline.New([]domain.Entry{
		stay(sofia, day(time.January, 5), day(time.January, 10)),
		stay(frankfurt, day(time.January, 15), day(time.January, 20)),
	})

	change, err := c.FillGaps(span(day(time.January, 1), day(time.January, 31)), chiangRai)

	require.NoError(t, err)
	require.Len(t, change.Upserts, 3)
	var got []domain.DateRange
	for _, s := range c.Stays() {
		if s.Location == chiangRai {
			got = append(got, s.Range())
		}
	}
	assert.Equal(t, []domain.DateRange{
		span(day(time.January, 1), day(time.January, 4)),
		span(day(time.January, 11), day(time.January, 14)),
		span(day(time.January, 21), day(time.January, 31)),
	}, got)
	assertNoOverlap(t, c)
}

func TestFillGaps_FullyCoveredIsNoOp(t *testing.T) {
	c := timeline.New([]domain.Entry{thailandWinter()})

	change, err := c.FillGaps(span(day(time.February, 1), day(time.February, 28)), sofia)

	require.NoError(t, err)
	assert.True(t, change.Empty())
}

// ---- invariants --------------------------------------------------------------

func TestValidate_DetectsOverlapOnLoad(t *testing.T) {
	c := timeline.New([]domain.Entry{
		thailandWinter(),
		stay(sofia, day(time.February, 10), day(time.February, 12)),
	})

	assert.ErrorIs(t, c.Validate(), domain.ErrOverlap)
}

func TestWrite_WinsOverTransientOverlaps(t *testing.T) {
	c := timeline.New([]domain.Entry{
		thailandWinter(),
		stay(sofia, day(time.February, 10), day(time.February, 12)),
	})

	_, err := c.Write(domain.Stay{
		Base:      domain.Base{Location: frankfurt},
		StartDate: day(time.February, 1),
		EndDate:   day(time.February, 28),
	})

	require.NoError(t, err)
	require.Len(t, c.Stays(), 1)
	assertNoOverlap(t, c)
}

func TestMutations_KeepNoOverlapInvariant(t *testing.T) {
	locations := []domain.Location{chiangRai, sofia, frankfurt}
	for _, p := range []timeline.Policy{timeline.PolicyReplace, timeline.PolicyClip} {
		t.Run(p.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			c := timeline.New(nil, timeline.WithPolicy(p))
			for i := 0; i < 300; i++ {
				start := day(time.January, 1).AddDate(0, 0, rng.Intn(365))
				r := span(start, start.AddDate(0, 0, rng.Intn(20)))
				var err error
				if rng.Intn(4) == 0 {
					_, err = c.DeleteRange(r)
				} else {
					_, err = c.SetLocation(r, locations[rng.Intn(len(locations))], "")
				}
				require.NoError(t, err)
				assertNoOverlap(t, c)
				assertSorted(t, c)
			}
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	c := timeline.New([]domain.Entry{thailandWinter()})
	clone := c.Clone()

	_, err := clone.DeleteRange(domain.YearRange(2025))

	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Zero(t, clone.Len())
}

func TestParsePolicy(t *testing.T) {
	p, err := timeline.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, timeline.PolicyReplace, p)

	p, err = timeline.ParsePolicy("CLIP")
	require.NoError(t, err)
	assert.Equal(t, timeline.PolicyClip, p)

	_, err = timeline.ParsePolicy("merge")
	assert.Error(t, err)
}
