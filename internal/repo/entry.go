// Package repo contains all database access logic for the stay logbook.
// No business logic lives here, only SQL and type mapping. Every query is
// scoped to a single user ID.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/staylog/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test;
// Begin on a pgx.Tx opens a savepoint, so Apply still works inside it.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// EntryRepo defines the persistence operations for timeline entries.
// The service layer depends on this interface, not the Postgres implementation.
type EntryRepo interface {
	// List returns all entries of a user ordered by start date, stays before
	// flights on the same day.
	List(ctx context.Context, userID string) ([]domain.Entry, error)

	// Get returns one entry. Returns domain.ErrNotFound if the user has no
	// entry with that ID.
	Get(ctx context.Context, userID string, id uuid.UUID) (domain.Entry, error)

	// Upsert inserts or overwrites an entry by ID and returns the stored row.
	// Returns domain.ErrNotFound if the ID belongs to another user.
	Upsert(ctx context.Context, e domain.Entry) (domain.Entry, error)

	// Delete removes one entry. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	// Apply persists a change set in one transaction, deletes first, and
	// returns the stored upserts. Nothing is written when any step fails.
	Apply(ctx context.Context, userID string, change domain.ChangeSet) ([]domain.Entry, error)
}

// pgEntryRepo is the Postgres implementation of EntryRepo.
type pgEntryRepo struct {
	db db
}

// NewEntryRepo constructs an EntryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEntryRepo(db db) EntryRepo {
	return &pgEntryRepo{db: db}
}

const entryColumns = `id, user_id, kind, start_date, end_date, city, country,
	accommodation_type, flight_number, departure, arrival, comments, created_at, updated_at`

func (r *pgEntryRepo) List(ctx context.Context, userID string) ([]domain.Entry, error) {
	q := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = @user_id
		ORDER BY start_date, kind DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.List: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.EntryRepo.List: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.List: rows: %w", err)
	}
	return entries, nil
}

func (r *pgEntryRepo) Get(ctx context.Context, userID string, id uuid.UUID) (domain.Entry, error) {
	q := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = @user_id AND id = @id`

	e, err := scanEntry(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "id": id}))
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.Get: %w", err)
	}
	return e, nil
}

func (r *pgEntryRepo) Upsert(ctx context.Context, e domain.Entry) (domain.Entry, error) {
	stored, err := upsertEntry(ctx, r.db, e)
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.Upsert: %w", err)
	}
	return stored, nil
}

func (r *pgEntryRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	const q = `DELETE FROM entries WHERE user_id = @user_id AND id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "id": id})
	if err != nil {
		return fmt.Errorf("repo.EntryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EntryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgEntryRepo) Apply(ctx context.Context, userID string, change domain.ChangeSet) ([]domain.Entry, error) {
	if change.Empty() {
		return []domain.Entry{}, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.Apply: begin: %w", err)
	}
	// Rollback after Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	// A clipped stay and the stay written over its old days are upserted one
	// after the other; the overlap check runs at commit.
	if _, err := tx.Exec(ctx, `SET CONSTRAINTS entries_stays_no_overlap DEFERRED`); err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.Apply: defer constraints: %w", err)
	}

	const del = `DELETE FROM entries WHERE user_id = @user_id AND id = @id`
	for _, id := range change.Deletes {
		if _, err := tx.Exec(ctx, del, pgx.NamedArgs{"user_id": userID, "id": id}); err != nil {
			return nil, fmt.Errorf("repo.EntryRepo.Apply: delete %s: %w", id, mapPgError(err))
		}
	}

	stored := make([]domain.Entry, 0, len(change.Upserts))
	for _, e := range change.Upserts {
		if e.Owner() != userID {
			return nil, fmt.Errorf("repo.EntryRepo.Apply: entry %s: %w", e.EntryID(), domain.ErrNotFound)
		}
		s, err := upsertEntry(ctx, tx, e)
		if err != nil {
			return nil, fmt.Errorf("repo.EntryRepo.Apply: %w", err)
		}
		stored = append(stored, s)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.Apply: commit: %w", mapPgError(err))
	}
	return stored, nil
}

// upsertEntry writes e through q, which may be the pool or an open transaction.
func upsertEntry(ctx context.Context, q db, e domain.Entry) (domain.Entry, error) {
	const sql = `
		INSERT INTO entries (id, user_id, kind, start_date, end_date, city, country,
		                     accommodation_type, flight_number, departure, arrival, comments)
		VALUES (@id, @user_id, @kind, @start_date, @end_date, @city, @country,
		        @accommodation_type, @flight_number, @departure, @arrival, @comments)
		ON CONFLICT (id) DO UPDATE
		SET kind               = EXCLUDED.kind,
		    start_date         = EXCLUDED.start_date,
		    end_date           = EXCLUDED.end_date,
		    city               = EXCLUDED.city,
		    country            = EXCLUDED.country,
		    accommodation_type = EXCLUDED.accommodation_type,
		    flight_number      = EXCLUDED.flight_number,
		    departure          = EXCLUDED.departure,
		    arrival            = EXCLUDED.arrival,
		    comments           = EXCLUDED.comments,
		    updated_at         = now()
		WHERE entries.user_id = EXCLUDED.user_id
		RETURNING ` + entryColumns

	stored, err := scanEntry(q.QueryRow(ctx, sql, entryArgs(e)))
	if err != nil {
		return nil, mapPgError(err)
	}
	return stored, nil
}

// entryArgs flattens e into the named columns. Fields of the other variant are NULL.
func entryArgs(e domain.Entry) pgx.NamedArgs {
	b := domain.BaseOf(e)
	args := pgx.NamedArgs{
		"id":                 b.ID,
		"user_id":            b.UserID,
		"kind":               string(e.Kind()),
		"start_date":         e.Start(),
		"end_date":           nil,
		"city":               b.City,
		"country":            b.Country,
		"accommodation_type": nil,
		"flight_number":      nil,
		"departure":          nil,
		"arrival":            nil,
		"comments":           b.Comments,
	}
	switch v := e.(type) {
	case domain.Stay:
		args["end_date"] = v.EndDate
		args["accommodation_type"] = string(v.Accommodation)
	case domain.Flight:
		args["flight_number"] = nullText(v.FlightNumber)
		args["departure"] = nullText(v.Departure)
		args["arrival"] = nullText(v.Arrival)
	}
	return args
}

// nullText maps the empty string to NULL.
func nullText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry maps a single row into a domain.Stay or domain.Flight by its kind column.
func scanEntry(s scanner) (domain.Entry, error) {
	var (
		b            domain.Base
		id           pgtype.UUID
		kind         string
		start, end   pgtype.Date
		acc          pgtype.Text
		flightNumber pgtype.Text
		departure    pgtype.Text
		arrival      pgtype.Text
		created      time.Time
		updated      time.Time
	)
	err := s.Scan(&id, &b.UserID, &kind, &start, &end, &b.City, &b.Country,
		&acc, &flightNumber, &departure, &arrival, &b.Comments, &created, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.CreatedAt = created.UTC()
	b.UpdatedAt = updated.UTC()

	switch domain.Kind(kind) {
	case domain.KindStay:
		return domain.Stay{
			Base:          b,
			StartDate:     domain.Day(start.Time),
			EndDate:       domain.Day(end.Time),
			Accommodation: domain.Accommodation(acc.String),
		}, nil
	case domain.KindFlight:
		return domain.Flight{
			Base:         b,
			Date:         domain.Day(start.Time),
			FlightNumber: flightNumber.String,
			Departure:    departure.String,
			Arrival:      arrival.String,
		}, nil
	}
	return nil, fmt.Errorf("unknown entry kind %q", kind)
}

// mapPgError turns constraint violations into domain errors.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23P01": // exclusion_violation
		return fmt.Errorf("%w: %s", domain.ErrOverlap, pgErr.ConstraintName)
	case "23514": // check_violation
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
	}
	return err
}
