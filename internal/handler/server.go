// Package handler implements the HTTP handlers for the stay logbook API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (entries.go, calendar.go, etc.)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/service"
	"github.com/pkordes/staylog/internal/timeline"
)

// EntryServicer defines the business operations the handlers depend on.
// Every call takes the user ID resolved by the auth middleware; "" is an
// anonymous caller.
type EntryServicer interface {
	List(ctx context.Context, userID string, f service.ListFilter, p domain.PaginationParams) ([]domain.Entry, int, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (domain.Entry, error)
	Create(ctx context.Context, userID string, e domain.Entry) (domain.Entry, error)
	Update(ctx context.Context, userID string, e domain.Entry) (domain.Entry, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	SetLocation(ctx context.Context, userID string, r domain.DateRange, loc domain.Location, acc domain.Accommodation) (service.RangeResult, error)
	DeleteRange(ctx context.Context, userID string, r domain.DateRange) (service.RangeResult, error)

	Summary(ctx context.Context, userID string, year, threshold int) (timeline.Summary, error)
	Calendar(ctx context.Context, userID string, year, monthIndex int) (timeline.MonthView, error)
	CalendarYear(ctx context.Context, userID string, year int) ([]timeline.MonthView, error)
	Locations(ctx context.Context, userID string) ([]domain.Location, error)

	ImportItems(ctx context.Context, userID string, items []json.RawMessage) (service.ImportResult, error)
	Export(ctx context.Context, userID string) ([]domain.Entry, error)

	SignOut(userID string)
	Today() time.Time
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, ...).
type Server struct {
	entries EntryServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies. A nil logger
// uses slog.Default.
func NewServer(entries EntryServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{entries: entries, log: logger}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}
