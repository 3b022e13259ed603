package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/staylog/internal/domain"
)

func TestEntryService_Import_SkipsItemMissingCity(t *testing.T) {
	r, applied := seededRepo()
	svc := newService(r)
	payload := `[
		{"type": "stay", "date": "2025-01-01", "end_date": "2025-03-11", "country": "Thailand", "city": "Chiang Rai"},
		{"type": "stay", "date": "2025-03-12", "country": "Germany"}
	]`

	res, err := svc.Import(context.Background(), user, []byte(payload))

	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Problems, 1)
	assert.Equal(t, 1, res.Problems[0].Index)
	assert.Contains(t, res.Problems[0].Reason, "city is required")
	require.Len(t, *applied, 1, "one transaction for the whole import")

	entries, err := svc.Export(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 70, entries[0].(domain.Stay).Days())
}

func TestEntryService_Import_MalformedPayloadAppliesNothing(t *testing.T) {
	r, applied := seededRepo()
	svc := newService(r)

	for _, payload := range []string{`{"type": "stay"}`, `[{"type": "stay",`, `null`, ``} {
		_, err := svc.Import(context.Background(), user, []byte(payload))

		assert.ErrorIs(t, err, domain.ErrMalformed, "payload %q", payload)
	}
	assert.Empty(t, *applied)
}

func TestEntryService_Import_ReportsEachBadItem(t *testing.T) {
	r, _ := seededRepo()
	svc := newService(r)
	payload := `[
		42,
		{"type": "train", "date": "2025-01-01", "country": "Bulgaria", "city": "Sofia"},
		{"type": "stay", "date": "01.02.2025", "country": "Bulgaria", "city": "Sofia"},
		{"type": "stay", "date": "2025-02-10", "end_date": "2025-02-01", "country": "Bulgaria", "city": "Sofia"},
		{"type": "stay", "date": "2025-02-10", "country": "Bulgaria", "city": "   "}
	]`

	res, err := svc.Import(context.Background(), user, []byte(payload))

	require.NoError(t, err)
	assert.Zero(t, res.Imported)
	assert.Equal(t, 5, res.Skipped)
	for i, p := range res.Problems {
		assert.Equal(t, i, p.Index)
		assert.NotEmpty(t, p.Reason)
	}
}

func TestEntryService_Import_IgnoresIDsAndAcceptsLegacyFieldNames(t *testing.T) {
	r, _ := seededRepo()
	svc := newService(r)
	payload := `[
		{"id": "abc", "type": "stay", "date": "2025-02-10T00:00:00.000Z", "endDate": "2025-02-12",
		 "country": "Bulgaria", "city": "Sofia", "accommodationType": "airbnb", "days": 99},
		{"type": "flight", "date": "2025-02-13", "country": "Germany", "city": "Frankfurt", "flightNumber": "LH1427"}
	]`

	res, err := svc.Import(context.Background(), user, []byte(payload))

	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	entries, err := svc.Export(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	s := entries[0].(domain.Stay)
	assert.Equal(t, 3, s.Days(), "days is recomputed, never trusted")
	assert.Equal(t, domain.AccommodationAirbnb, s.Accommodation)
	assert.Equal(t, "LH1427", entries[1].(domain.Flight).FlightNumber)
}

func TestEntryService_Import_LaterStaysWinAndFlightsDeduplicate(t *testing.T) {
	r, applied := seededRepo(thailandWinter())
	svc := newService(r)
	payload := `[
		{"type": "stay", "date": "2025-02-10", "end_date": "2025-02-20", "country": "Bulgaria", "city": "Sofia"},
		{"type": "stay", "date": "2025-02-15", "end_date": "2025-02-25", "country": "Germany", "city": "Frankfurt"},
		{"type": "flight", "date": "2025-02-15", "country": "Germany", "city": "Frankfurt", "flight_number": "LH1427"},
		{"type": "flight", "date": "2025-02-15", "country": "Germany", "city": "Frankfurt", "flight_number": "LH1427"}
	]`

	res, err := svc.Import(context.Background(), user, []byte(payload))

	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "duplicate flight", res.Problems[0].Reason)

	require.Len(t, *applied, 1)
	change := (*applied)[0]
	assert.Len(t, change.Deletes, 1, "only the pre-existing stay is deleted")
	assert.Len(t, change.Upserts, 2, "the Sofia stay is superseded within the import")

	entries, err := svc.Export(context.Background(), user)
	require.NoError(t, err)
	stays := domain.StaysOf(entries)
	require.Len(t, stays, 1)
	assert.Equal(t, frankfurt, stays[0].Location)
	assert.Equal(t, domain.Date(2025, time.February, 15), stays[0].StartDate)
}

func TestEntryService_Import_Anonymous(t *testing.T) {
	svc := newService(&mockEntryRepo{})

	_, err := svc.Import(context.Background(), "", []byte(`[]`))

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
