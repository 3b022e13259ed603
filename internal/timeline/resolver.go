package timeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/staylog/internal/domain"
)

// SetLocation assigns loc to every day of r. Stays intersecting r are resolved
// according to the collection's policy and a single new stay spanning r is
// written. An empty accommodation means "other".
//
// Calling SetLocation twice with identical arguments leaves the collection as
// the first call did and returns an empty ChangeSet the second time.
func (c *Collection) SetLocation(r domain.DateRange, loc domain.Location, acc domain.Accommodation) (domain.ChangeSet, error) {
	r, err := domain.NewDateRange(r.Start, r.End)
	if err != nil {
		return domain.ChangeSet{}, err
	}
	acc, err = domain.ParseAccommodation(string(acc))
	if err != nil {
		return domain.ChangeSet{}, err
	}
	return c.Write(domain.Stay{
		Base:          domain.Base{Location: loc},
		StartDate:     r.Start,
		EndDate:       r.End,
		Accommodation: acc,
	})
}

// Write stores stay as an authoritative edit: it wins over any number of
// stays intersecting its range, which are removed or clipped per policy.
// A stay already covering exactly the same range is overwritten in place and
// keeps its ID.
func (c *Collection) Write(stay domain.Stay) (domain.ChangeSet, error) {
	stay = stay.Normalize()
	if err := stay.Validate(); err != nil {
		return domain.ChangeSet{}, err
	}
	r := stay.Range()

	var hits []domain.Stay
	for _, s := range c.Stays() {
		if s.Range().Overlaps(r) {
			hits = append(hits, s)
		}
	}
	if len(hits) == 1 && sameStay(hits[0], stay) {
		return domain.ChangeSet{}, nil
	}

	for _, h := range hits {
		if h.Range().Equal(r) && (stay.ID == uuid.Nil || stay.ID == h.ID) {
			stay.ID = h.ID
			stay.CreatedAt = h.CreatedAt
			break
		}
	}

	next, change := c.resolve(r, stay.ID)
	written := c.stamp(stay)
	next = append(next, written)
	change.Upserts = append(change.Upserts, written)
	return c.commit(next, change)
}

// DeleteRange clears every day of r. Under PolicyReplace each intersecting
// stay is removed whole; under PolicyClip only the days inside r are removed.
// Flights are never touched. Nothing intersecting r is a no-op.
func (c *Collection) DeleteRange(r domain.DateRange) (domain.ChangeSet, error) {
	r, err := domain.NewDateRange(r.Start, r.End)
	if err != nil {
		return domain.ChangeSet{}, err
	}
	next, change := c.resolve(r, uuid.Nil)
	return c.commit(next, change)
}

// resolve returns the entries that remain once r is cleared, along with the
// writes that clearing takes. The stay with ID keep is left for the caller to
// overwrite and produces no delete.
func (c *Collection) resolve(r domain.DateRange, keep uuid.UUID) ([]domain.Entry, domain.ChangeSet) {
	var change domain.ChangeSet
	next := make([]domain.Entry, 0, len(c.entries)+1)
	for _, e := range c.entries {
		if keep != uuid.Nil && e.EntryID() == keep {
			continue
		}
		s, ok := e.(domain.Stay)
		if !ok || !s.Range().Overlaps(r) {
			next = append(next, e)
			continue
		}
		rest := remainders(s, r, c.policy)
		if len(rest) == 0 {
			change.Deletes = append(change.Deletes, s.ID)
			continue
		}
		for _, part := range rest {
			next = append(next, part)
			change.Upserts = append(change.Upserts, part)
		}
	}
	return next, change
}

// remainders returns the parts of s lying outside r. The first part keeps the
// ID of s; a second part (when r falls strictly inside s) gets a fresh ID.
func remainders(s domain.Stay, r domain.DateRange, p Policy) []domain.Entry {
	if p != PolicyClip {
		return nil
	}
	var out []domain.Entry
	if s.StartDate.Before(r.Start) {
		left := s
		left.EndDate = r.Start.AddDate(0, 0, -1)
		out = append(out, left)
	}
	if s.EndDate.After(r.End) {
		right := s
		right.StartDate = r.End.AddDate(0, 0, 1)
		if len(out) > 0 {
			right.ID = uuid.New()
			right.CreatedAt = time.Time{}
		}
		out = append(out, right)
	}
	return out
}

// Add inserts a manually entered stay or flight. Unlike Write, a stay that
// would overlap an existing one is rejected with domain.ErrOverlap.
func (c *Collection) Add(e domain.Entry) (domain.ChangeSet, error) {
	e = domain.Normalize(e)
	if err := e.Validate(); err != nil {
		return domain.ChangeSet{}, err
	}
	if e.EntryID() != uuid.Nil {
		if _, ok := c.Get(e.EntryID()); ok {
			return domain.ChangeSet{}, fmt.Errorf("%w: entry %s already exists", domain.ErrValidation, e.EntryID())
		}
	}
	e = c.stamp(e)
	next := append(c.Entries(), e)
	return c.commit(next, domain.ChangeSet{Upserts: []domain.Entry{e}})
}

// Update replaces the entry with the same ID, which may change variant.
// The creation time and owner of the stored entry are kept.
func (c *Collection) Update(e domain.Entry) (domain.ChangeSet, error) {
	i := c.indexOf(e.EntryID())
	if i < 0 {
		return domain.ChangeSet{}, fmt.Errorf("%w: entry %s", domain.ErrNotFound, e.EntryID())
	}
	e = domain.Normalize(e)
	if err := e.Validate(); err != nil {
		return domain.ChangeSet{}, err
	}
	old := domain.BaseOf(c.entries[i])
	b := domain.BaseOf(e)
	b.UserID = old.UserID
	b.CreatedAt = old.CreatedAt
	e = c.stamp(domain.WithBase(e, b))

	next := c.Entries()
	next[i] = e
	return c.commit(next, domain.ChangeSet{Upserts: []domain.Entry{e}})
}

// Remove deletes one entry by ID.
func (c *Collection) Remove(id uuid.UUID) (domain.ChangeSet, error) {
	i := c.indexOf(id)
	if i < 0 {
		return domain.ChangeSet{}, fmt.Errorf("%w: entry %s", domain.ErrNotFound, id)
	}
	next := c.Entries()
	next = append(next[:i], next[i+1:]...)
	return c.commit(next, domain.ChangeSet{Deletes: []uuid.UUID{id}})
}

// FillGaps creates one stay at loc for every maximal run of days in r that no
// stay covers. Existing stays are never modified.
func (c *Collection) FillGaps(r domain.DateRange, loc domain.Location) (domain.ChangeSet, error) {
	r, err := domain.NewDateRange(r.Start, r.End)
	if err != nil {
		return domain.ChangeSet{}, err
	}
	if err := loc.Validate(); err != nil {
		return domain.ChangeSet{}, err
	}

	var change domain.ChangeSet
	next := c.Entries()
	gap := func(start, end time.Time) {
		s := c.stamp(domain.Stay{
			Base:          domain.Base{Location: loc},
			StartDate:     start,
			EndDate:       end,
			Accommodation: domain.AccommodationOther,
		}.Normalize())
		next = append(next, s)
		change.Upserts = append(change.Upserts, s)
	}

	cursor := r.Start
	for _, s := range c.Stays() {
		if !s.Range().Overlaps(domain.DateRange{Start: cursor, End: r.End}) {
			continue
		}
		if s.StartDate.After(cursor) {
			gap(cursor, s.StartDate.AddDate(0, 0, -1))
		}
		if !s.EndDate.Before(r.End) {
			cursor = r.End.AddDate(0, 0, 1)
			break
		}
		cursor = s.EndDate.AddDate(0, 0, 1)
	}
	if !cursor.After(r.End) {
		gap(cursor, r.End)
	}
	if change.Empty() {
		return change, nil
	}
	return c.commit(next, change)
}

func sameStay(a, b domain.Stay) bool {
	return a.Range().Equal(b.Range()) &&
		a.Location == b.Location &&
		a.Accommodation == b.Accommodation &&
		a.Comments == b.Comments &&
		(b.ID == uuid.Nil || a.ID == b.ID)
}
