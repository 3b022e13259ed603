// Package service contains the business logic for the stay logbook.
// Services own each user's timeline.Collection, apply every edit to a copy,
// persist the resulting change set through the repo and only then swap the
// copy in. No SQL lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/repo"
	"github.com/pkordes/staylog/internal/timeline"
)

// Options configures an EntryService. The zero value uses PolicyReplace, the
// default residency threshold, no gap filling and the wall clock.
type Options struct {
	Policy    timeline.Policy
	Threshold int
	// DefaultLocation, when set, fills uncovered days from 1 January of the
	// current year through today whenever a session is loaded.
	DefaultLocation *domain.Location
	Now             func() time.Time
}

// EntryService implements every entry operation for authenticated users.
// A user's entries are loaded once into a session and kept in memory until
// SignOut; all writes go through the session.
type EntryService struct {
	repo repo.EntryRepo
	log  *slog.Logger
	opts Options

	mu       sync.Mutex
	sessions map[string]*session
	loading  singleflight.Group
}

// session is one user's loaded collection. mu serialises edits.
type session struct {
	mu   sync.Mutex
	coll *timeline.Collection
}

// NewEntryService constructs an EntryService backed by the provided repo.
func NewEntryService(r repo.EntryRepo, log *slog.Logger, opts Options) *EntryService {
	if opts.Threshold <= 0 {
		opts.Threshold = timeline.DefaultThreshold
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &EntryService{repo: r, log: log, opts: opts, sessions: map[string]*session{}}
}

// Threshold is the configured residency threshold in days.
func (s *EntryService) Threshold() int { return s.opts.Threshold }

// Today is the current calendar day.
func (s *EntryService) Today() time.Time { return domain.Day(s.opts.Now()) }

// ---- sessions ----------------------------------------------------------------

// load returns the user's session, reading entries from the repo on first
// use. The global lock only guards the map: concurrent first loads of one
// user share a single repo read, and other users are never blocked by it.
func (s *EntryService) load(ctx context.Context, userID string) (*session, error) {
	if sess := s.cached(userID); sess != nil {
		return sess, nil
	}
	v, err, _ := s.loading.Do(userID, func() (any, error) {
		if sess := s.cached(userID); sess != nil {
			return sess, nil
		}
		entries, err := s.repo.List(ctx, userID)
		if err != nil {
			return nil, err
		}
		coll := timeline.New(entries, timeline.WithPolicy(s.opts.Policy), timeline.WithOwner(userID))
		if err := coll.Validate(); err != nil {
			// Stored data predates the overlap constraint. The next write over the
			// affected days resolves it.
			s.log.Warn("loaded entries violate invariant", "user_id", userID, "error", err)
		}
		sess := &session{coll: coll}
		if s.opts.DefaultLocation != nil {
			if _, err := s.fillGaps(ctx, userID, sess); err != nil {
				s.log.Error("gap fill on load failed", "user_id", userID, "error", err)
			}
		}

		s.mu.Lock()
		s.sessions[userID] = sess
		s.mu.Unlock()
		s.log.Info("session loaded", "user_id", userID, "entries", coll.Len())
		return sess, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*session), nil
}

func (s *EntryService) cached(userID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}

// read runs fn against the user's collection. Anonymous callers see an empty one.
func (s *EntryService) read(ctx context.Context, userID string, fn func(c *timeline.Collection)) error {
	if userID == "" {
		fn(timeline.New(nil))
		return nil
	}
	sess, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(sess.coll)
	return nil
}

// mutate applies fn to a copy of the user's collection, persists the change
// set and installs the copy. The stored versions of the upserts are returned.
// On any error the session is left as it was.
func (s *EntryService) mutate(ctx context.Context, userID string, fn func(c *timeline.Collection) (domain.ChangeSet, error)) (domain.ChangeSet, error) {
	if userID == "" {
		return domain.ChangeSet{}, domain.ErrUnauthenticated
	}
	sess, err := s.load(ctx, userID)
	if err != nil {
		return domain.ChangeSet{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.commit(ctx, userID, sess, fn)
}

// commit does the work of mutate for a session already locked by the caller.
func (s *EntryService) commit(ctx context.Context, userID string, sess *session, fn func(c *timeline.Collection) (domain.ChangeSet, error)) (domain.ChangeSet, error) {
	next := sess.coll.Clone()
	change, err := fn(next)
	if err != nil {
		return domain.ChangeSet{}, err
	}
	if change.Empty() {
		return change, nil
	}
	stored, err := s.repo.Apply(ctx, userID, change)
	if err != nil {
		return domain.ChangeSet{}, err
	}
	next.Sync(stored)
	sess.coll = next
	change.Upserts = stored
	return change, nil
}

// SignOut drops the user's in-memory session. The next request reloads it.
func (s *EntryService) SignOut(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[userID]; ok {
		delete(s.sessions, userID)
		s.log.Info("session closed", "user_id", userID)
	}
}

// ActiveUsers lists the users with a loaded session.
func (s *EntryService) ActiveUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		users = append(users, id)
	}
	return users
}

// ---- CRUD ----------------------------------------------------------------------

// ListFilter narrows List. Nil fields match everything.
type ListFilter struct {
	Kind *domain.Kind
	// Year keeps entries touching any day of that year.
	Year *int
}

func (f ListFilter) match(e domain.Entry) bool {
	if f.Kind != nil && e.Kind() != *f.Kind {
		return false
	}
	if f.Year != nil {
		year := domain.YearRange(*f.Year)
		switch v := e.(type) {
		case domain.Stay:
			return v.Range().Overlaps(year)
		default:
			return year.Contains(e.Start())
		}
	}
	return true
}

// List returns one page of the user's timeline and the total number of
// entries matching the filter. Always returns a non-nil slice.
func (s *EntryService) List(ctx context.Context, userID string, f ListFilter, p domain.PaginationParams) ([]domain.Entry, int, error) {
	var matched []domain.Entry
	err := s.read(ctx, userID, func(c *timeline.Collection) {
		for _, e := range c.Entries() {
			if f.match(e) {
				matched = append(matched, e)
			}
		}
	})
	if err != nil {
		return nil, 0, fmt.Errorf("service.EntryService.List: %w", err)
	}
	lo, hi := p.Bounds(len(matched))
	page := make([]domain.Entry, 0, hi-lo)
	page = append(page, matched[lo:hi]...)
	return page, len(matched), nil
}

// Get returns a single entry. Returns domain.ErrNotFound if the user has none with that ID.
func (s *EntryService) Get(ctx context.Context, userID string, id uuid.UUID) (domain.Entry, error) {
	var (
		e  domain.Entry
		ok bool
	)
	err := s.read(ctx, userID, func(c *timeline.Collection) { e, ok = c.Get(id) })
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.Get: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("service.EntryService.Get: %w", domain.ErrNotFound)
	}
	return e, nil
}

// Create adds a manually entered entry. A stay overlapping an existing one
// is rejected with domain.ErrOverlap; use SetLocation to overwrite days.
func (s *EntryService) Create(ctx context.Context, userID string, e domain.Entry) (domain.Entry, error) {
	change, err := s.mutate(ctx, userID, func(c *timeline.Collection) (domain.ChangeSet, error) {
		return c.Add(e)
	})
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.Create: %w", err)
	}
	return change.Upserts[0], nil
}

// Update replaces an existing entry. Returns domain.ErrNotFound for an
// unknown ID and domain.ErrOverlap when a stay would collide with another.
func (s *EntryService) Update(ctx context.Context, userID string, e domain.Entry) (domain.Entry, error) {
	change, err := s.mutate(ctx, userID, func(c *timeline.Collection) (domain.ChangeSet, error) {
		return c.Update(e)
	})
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.Update: %w", err)
	}
	return change.Upserts[0], nil
}

// Delete removes one entry by ID.
func (s *EntryService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	_, err := s.mutate(ctx, userID, func(c *timeline.Collection) (domain.ChangeSet, error) {
		return c.Remove(id)
	})
	if err != nil {
		return fmt.Errorf("service.EntryService.Delete: %w", err)
	}
	return nil
}

// ---- calendar edits --------------------------------------------------------------

// RangeResult reports what a calendar edit changed.
type RangeResult struct {
	// Written is the stay covering the edited range; nil for DeleteRange.
	Written *domain.Stay
	// Deleted counts stays removed entirely.
	Deleted int
	// Updated counts existing stays that were trimmed or split, including
	// the new part of a split.
	Updated int
}

// SetLocation assigns a location to every day of r, overwriting whatever
// stays covered those days.
func (s *EntryService) SetLocation(ctx context.Context, userID string, r domain.DateRange, loc domain.Location, acc domain.Accommodation) (RangeResult, error) {
	change, err := s.mutate(ctx, userID, func(c *timeline.Collection) (domain.ChangeSet, error) {
		return c.SetLocation(r, loc, acc)
	})
	if err != nil {
		return RangeResult{}, fmt.Errorf("service.EntryService.SetLocation: %w", err)
	}
	res := RangeResult{Deleted: len(change.Deletes)}
	if n := len(change.Upserts); n > 0 {
		// The written stay is always the last upsert.
		if st, ok := change.Upserts[n-1].(domain.Stay); ok {
			res.Written = &st
		}
		res.Updated = n - 1
		return res, nil
	}
	// An identical repeat writes nothing; report the stay already in place.
	want, _ := domain.NewDateRange(r.Start, r.End)
	err = s.read(ctx, userID, func(c *timeline.Collection) {
		for _, st := range c.Stays() {
			if st.Range().Equal(want) {
				res.Written = &st
				return
			}
		}
	})
	if err != nil {
		return RangeResult{}, fmt.Errorf("service.EntryService.SetLocation: %w", err)
	}
	return res, nil
}

// DeleteRange clears every day of r. Nothing intersecting r is a no-op.
func (s *EntryService) DeleteRange(ctx context.Context, userID string, r domain.DateRange) (RangeResult, error) {
	change, err := s.mutate(ctx, userID, func(c *timeline.Collection) (domain.ChangeSet, error) {
		return c.DeleteRange(r)
	})
	if err != nil {
		return RangeResult{}, fmt.Errorf("service.EntryService.DeleteRange: %w", err)
	}
	return RangeResult{Deleted: len(change.Deletes), Updated: len(change.Upserts)}, nil
}

// FillGaps runs the gap-fill pass for one user and returns the number of
// stays created. It is a no-op without a configured default location.
func (s *EntryService) FillGaps(ctx context.Context, userID string) (int, error) {
	if s.opts.DefaultLocation == nil {
		return 0, nil
	}
	if userID == "" {
		return 0, domain.ErrUnauthenticated
	}
	sess, err := s.load(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service.EntryService.FillGaps: %w", err)
	}
	n, err := s.fillGaps(ctx, userID, sess)
	if err != nil {
		return 0, fmt.Errorf("service.EntryService.FillGaps: %w", err)
	}
	return n, nil
}

func (s *EntryService) fillGaps(ctx context.Context, userID string, sess *session) (int, error) {
	today := s.Today()
	r := domain.DateRange{Start: domain.Date(today.Year(), time.January, 1), End: today}
	loc := *s.opts.DefaultLocation

	sess.mu.Lock()
	defer sess.mu.Unlock()
	change, err := s.commit(ctx, userID, sess, func(c *timeline.Collection) (domain.ChangeSet, error) {
		return c.FillGaps(r, loc)
	})
	if err != nil {
		return 0, err
	}
	if n := len(change.Upserts); n > 0 {
		s.log.Info("gap fill", "user_id", userID, "stays", n, "location", loc.String())
	}
	return len(change.Upserts), nil
}

// ---- read-side views ----------------------------------------------------------------

// Summary aggregates the user's stays for year. A threshold of zero or less
// uses the configured one.
func (s *EntryService) Summary(ctx context.Context, userID string, year, threshold int) (timeline.Summary, error) {
	if threshold <= 0 {
		threshold = s.opts.Threshold
	}
	var sum timeline.Summary
	err := s.read(ctx, userID, func(c *timeline.Collection) {
		sum = timeline.Summarize(c.Entries(), year, threshold)
	})
	if err != nil {
		return timeline.Summary{}, fmt.Errorf("service.EntryService.Summary: %w", err)
	}
	return sum, nil
}

// Calendar projects one month. monthIndex is 0-based.
func (s *EntryService) Calendar(ctx context.Context, userID string, year, monthIndex int) (timeline.MonthView, error) {
	var (
		view    timeline.MonthView
		projErr error
	)
	err := s.read(ctx, userID, func(c *timeline.Collection) {
		view, projErr = timeline.ProjectMonth(c.Entries(), year, monthIndex)
	})
	if err == nil && projErr != nil {
		err = fmt.Errorf("%w: %w", domain.ErrValidation, projErr)
	}
	if err != nil {
		return timeline.MonthView{}, fmt.Errorf("service.EntryService.Calendar: %w", err)
	}
	return view, nil
}

// CalendarYear projects all twelve months of year.
func (s *EntryService) CalendarYear(ctx context.Context, userID string, year int) ([]timeline.MonthView, error) {
	var months []timeline.MonthView
	err := s.read(ctx, userID, func(c *timeline.Collection) {
		months = timeline.ProjectYear(c.Entries(), year)
	})
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.CalendarYear: %w", err)
	}
	return months, nil
}

// Locations lists the distinct locations of the user's entries, most
// recently used first, for the day editor's picker.
func (s *EntryService) Locations(ctx context.Context, userID string) ([]domain.Location, error) {
	out := []domain.Location{}
	err := s.read(ctx, userID, func(c *timeline.Collection) {
		entries := c.Entries()
		seen := map[domain.Location]bool{}
		for i := len(entries) - 1; i >= 0; i-- {
			loc := entries[i].Place()
			if !seen[loc] {
				seen[loc] = true
				out = append(out, loc)
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.Locations: %w", err)
	}
	return out, nil
}

// Export returns the user's whole collection in timeline order.
func (s *EntryService) Export(ctx context.Context, userID string) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := s.read(ctx, userID, func(c *timeline.Collection) { entries = c.Entries() })
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.Export: %w", err)
	}
	return entries, nil
}
