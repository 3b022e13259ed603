package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/staylog/internal/auth"
	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/handler"
	"github.com/pkordes/staylog/internal/handler/gen"
	"github.com/pkordes/staylog/internal/service"
	"github.com/pkordes/staylog/internal/timeline"
)

// mockEntryServicer is a test double for handler.EntryServicer.
// Set only the method fields your test needs.
type mockEntryServicer struct {
	list         func(ctx context.Context, userID string, f service.ListFilter, p domain.PaginationParams) ([]domain.Entry, int, error)
	get          func(ctx context.Context, userID string, id uuid.UUID) (domain.Entry, error)
	create       func(ctx context.Context, userID string, e domain.Entry) (domain.Entry, error)
	update       func(ctx context.Context, userID string, e domain.Entry) (domain.Entry, error)
	delete       func(ctx context.Context, userID string, id uuid.UUID) error
	setLocation  func(ctx context.Context, userID string, r domain.DateRange, loc domain.Location, acc domain.Accommodation) (service.RangeResult, error)
	deleteRange  func(ctx context.Context, userID string, r domain.DateRange) (service.RangeResult, error)
	summary      func(ctx context.Context, userID string, year, threshold int) (timeline.Summary, error)
	calendar     func(ctx context.Context, userID string, year, monthIndex int) (timeline.MonthView, error)
	calendarYear func(ctx context.Context, userID string, year int) ([]timeline.MonthView, error)
	locations    func(ctx context.Context, userID string) ([]domain.Location, error)
	importItems  func(ctx context.Context, userID string, items []json.RawMessage) (service.ImportResult, error)
	export       func(ctx context.Context, userID string) ([]domain.Entry, error)
	signOut      func(userID string)
	today        time.Time
}

func (m *mockEntryServicer) List(ctx context.Context, userID string, f service.ListFilter, p domain.PaginationParams) ([]domain.Entry, int, error) {
	return m.list(ctx, userID, f, p)
}
func (m *mockEntryServicer) Get(ctx context.Context, userID string, id uuid.UUID) (domain.Entry, error) {
	return m.get(ctx, userID, id)
}
func (m *mockEntryServicer) Create(ctx context.Context, userID string, e domain.Entry) (domain.Entry, error) {
	return m.create(ctx, userID, e)
}
func (m *mockEntryServicer) Update(ctx context.Context, userID string, e domain.Entry) (domain.Entry, error) {
	return m.update(ctx, userID, e)
}
func (m *mockEntryServicer) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}
func (m *mockEntryServicer) SetLocation(ctx context.Context, userID string, r domain.DateRange, loc domain.Location, acc domain.Accommodation) (service.RangeResult, error) {
	return m.setLocation(ctx, userID, r, loc, acc)
}
func (m *mockEntryServicer) DeleteRange(ctx context.Context, userID string, r domain.DateRange) (service.RangeResult, error) {
	return m.deleteRange(ctx, userID, r)
}
func (m *mockEntryServicer) Summary(ctx context.Context, userID string, year, threshold int) (timeline.Summary, error) {
	return m.summary(ctx, userID, year, threshold)
}
func (m *mockEntryServicer) Calendar(ctx context.Context, userID string, year, monthIndex int) (timeline.MonthView, error) {
	return m.calendar(ctx, userID, year, monthIndex)
}
func (m *mockEntryServicer) CalendarYear(ctx context.Context, userID string, year int) ([]timeline.MonthView, error) {
	return m.calendarYear(ctx, userID, year)
}
func (m *mockEntryServicer) Locations(ctx context.Context, userID string) ([]domain.Location, error) {
	return m.locations(ctx, userID)
}
func (m *mockEntryServicer) ImportItems(ctx context.Context, userID string, items []json.RawMessage) (service.ImportResult, error) {
	return m.importItems(ctx, userID, items)
}
func (m *mockEntryServicer) Export(ctx context.Context, userID string) ([]domain.Entry, error) {
	return m.export(ctx, userID)
}
func (m *mockEntryServicer) SignOut(userID string) { m.signOut(userID) }
func (m *mockEntryServicer) Today() time.Time      { return m.today }

// compile-time check: mockEntryServicer must satisfy handler.EntryServicer.
var _ handler.EntryServicer = (*mockEntryServicer)(nil)

// compile-time check: the real service must satisfy handler.EntryServicer.
var _ handler.EntryServicer = (*service.EntryService)(nil)

// ---- helpers ---------------------------------------------------------------

const testUser = "traveller-1"

// newHTTPHandler wires a Server with the given mock into the generated chi
// router with the same error handlers main.go uses.
func newHTTPHandler(svc handler.EntryServicer) http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := handler.NewServer(svc, logger)
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.RequestErrorHandler(logger),
		ResponseErrorHandlerFunc: handler.ResponseErrorHandler(logger),
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{ErrorHandlerFunc: handler.RequestErrorHandler(logger)})
}

// asUser marks req as sent by an authenticated user, as the auth middleware does.
func asUser(req *http.Request) *http.Request {
	return req.WithContext(auth.WithUserID(req.Context(), testUser))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body io.Reader) gen.ErrorResponse {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func stayFixture() domain.Stay {
	now := time.Now().UTC()
	return domain.Stay{
		Base: domain.Base{
			ID:        uuid.New(),
			UserID:    testUser,
			Location:  domain.Location{City: "Chiang Rai", Country: "Thailand"},
			CreatedAt: now,
			UpdatedAt: now,
		},
		StartDate:     domain.Date(2025, time.January, 1),
		EndDate:       domain.Date(2025, time.March, 11),
		Accommodation: domain.AccommodationHotel,
	}
}

func flightFixture() domain.Flight {
	now := time.Now().UTC()
	return domain.Flight{
		Base: domain.Base{
			ID:        uuid.New(),
			UserID:    testUser,
			Location:  domain.Location{City: "Frankfurt", Country: "Germany"},
			CreatedAt: now,
			UpdatedAt: now,
		},
		Date:         domain.Date(2025, time.March, 12),
		FlightNumber: "LH773",
	}
}
