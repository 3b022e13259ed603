package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/repo"
	"github.com/pkordes/staylog/testutil"
)

const testUser = "user-1"

// newTestRepo opens a transaction against the test database and returns an
// EntryRepo backed by that transaction. The transaction is rolled back when
// the test finishes.
func newTestRepo(t *testing.T) repo.EntryRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewEntryRepo(tx)
}

func stayFixture(start, end time.Time) domain.Stay {
	return domain.Stay{
		Base: domain.Base{
			ID:       uuid.New(),
			UserID:   testUser,
			Location: domain.Location{City: "Chiang Rai", Country: "Thailand"},
			Comments: "Test notes",
		},
		StartDate:     start,
		EndDate:       end,
		Accommodation: domain.AccommodationHotel,
	}
}

func flightFixture(date time.Time) domain.Flight {
	return domain.Flight{
		Base: domain.Base{
			ID:       uuid.New(),
			UserID:   testUser,
			Location: domain.Location{City: "Berlin", Country: "Deutschland"},
		},
		Date:         date,
		FlightNumber: "DE4087",
	}
}

func TestEntryRepo_Upsert_Stay(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := stayFixture(domain.Date(2025, 1, 1), domain.Date(2025, 3, 11))
	got, err := r.Upsert(ctx, input)

	require.NoError(t, err)
	s, ok := got.(domain.Stay)
	require.True(t, ok, "expected a stay, got %T", got)
	assert.Equal(t, input.ID, s.ID)
	assert.Equal(t, input.StartDate, s.StartDate)
	assert.Equal(t, input.EndDate, s.EndDate)
	assert.Equal(t, 70, s.Days())
	assert.Equal(t, input.Location, s.Location)
	assert.Equal(t, domain.AccommodationHotel, s.Accommodation)
	assert.Equal(t, "Test notes", s.Comments)
	assert.False(t, s.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestEntryRepo_Upsert_Flight(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := flightFixture(domain.Date(2025, 6, 12))
	got, err := r.Upsert(ctx, input)

	require.NoError(t, err)
	f, ok := got.(domain.Flight)
	require.True(t, ok, "expected a flight, got %T", got)
	assert.Equal(t, input.Date, f.Date)
	assert.Equal(t, "DE4087", f.FlightNumber)
	assert.Empty(t, f.Departure)
}

func TestEntryRepo_Upsert_OverwritesByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := stayFixture(domain.Date(2025, 1, 1), domain.Date(2025, 1, 5))
	_, err := r.Upsert(ctx, input)
	require.NoError(t, err)

	input.City = "Bangkok"
	input.EndDate = domain.Date(2025, 1, 9)
	got, err := r.Upsert(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Bangkok", got.Place().City)
	assert.Equal(t, 9, got.(domain.Stay).Days())
}

func TestEntryRepo_Upsert_OtherUsersIDIsNotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := stayFixture(domain.Date(2025, 1, 1), domain.Date(2025, 1, 5))
	_, err := r.Upsert(ctx, input)
	require.NoError(t, err)

	input.UserID = "someone-else"
	_, err = r.Upsert(ctx, input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntryRepo_Upsert_OverlappingStayRejected(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.Upsert(ctx, stayFixture(domain.Date(2025, 1, 1), domain.Date(2025, 3, 11)))
	require.NoError(t, err)

	_, err = r.Upsert(ctx, stayFixture(domain.Date(2025, 3, 11), domain.Date(2025, 3, 20)))

	assert.ErrorIs(t, err, domain.ErrOverlap)
}

func TestEntryRepo_Get_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Get(context.Background(), testUser, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntryRepo_List_OrderedAndScoped(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	day := domain.Date(2025, 6, 12)
	flight := flightFixture(day)
	later := stayFixture(day, day.AddDate(0, 0, 2))
	earlier := stayFixture(day.AddDate(0, 0, -10), day.AddDate(0, 0, -1))
	other := stayFixture(day, day)
	other.UserID = "someone-else"

	for _, e := range []domain.Entry{flight, later, earlier, other} {
		_, err := r.Upsert(ctx, e)
		require.NoError(t, err)
	}

	got, err := r.List(ctx, testUser)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, earlier.ID, got[0].EntryID())
	assert.Equal(t, later.ID, got[1].EntryID(), "stay before flight on the same day")
	assert.Equal(t, flight.ID, got[2].EntryID())
}

func TestEntryRepo_List_EmptyIsNotNil(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.List(context.Background(), "nobody")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEntryRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	e := flightFixture(domain.Date(2025, 6, 12))
	_, err := r.Upsert(ctx, e)
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, testUser, e.ID))

	_, err = r.Get(ctx, testUser, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, testUser, e.ID), domain.ErrNotFound)
}

func TestEntryRepo_Apply_DeletesThenUpserts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	old := stayFixture(domain.Date(2025, 1, 1), domain.Date(2025, 3, 11))
	_, err := r.Upsert(ctx, old)
	require.NoError(t, err)

	replacement := stayFixture(domain.Date(2025, 2, 10), domain.Date(2025, 2, 12))
	replacement.City, replacement.Country = "Sofia", "Bulgaria"

	stored, err := r.Apply(ctx, testUser, domain.ChangeSet{
		Upserts: []domain.Entry{replacement},
		Deletes: []uuid.UUID{old.ID},
	})

	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, domain.BaseOf(stored[0]).CreatedAt.IsZero())

	all, err := r.List(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, replacement.ID, all[0].EntryID())
}

func TestEntryRepo_Apply_RejectsForeignOwner(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	e := stayFixture(domain.Date(2025, 1, 1), domain.Date(2025, 1, 2))
	e.UserID = "someone-else"

	_, err := r.Apply(ctx, testUser, domain.ChangeSet{Upserts: []domain.Entry{e}})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	all, err := r.List(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, all, "nothing is written when Apply fails")
}

func TestEntryRepo_Apply_EmptyIsNoOp(t *testing.T) {
	r := newTestRepo(t)

	stored, err := r.Apply(context.Background(), testUser, domain.ChangeSet{})

	require.NoError(t, err)
	assert.Empty(t, stored)
}
