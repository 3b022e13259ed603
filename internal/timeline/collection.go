// Package timeline owns a user's entry collection and keeps it consistent.
//
// A Collection is the only writer of entries: every mutation re-sorts the
// collection, checks that no two stays cover the same calendar day, and returns
// the domain.ChangeSet that must be persisted. Summarize and ProjectMonth are
// pure read-side views over a slice of entries.
package timeline

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/staylog/internal/domain"
)

// Policy decides what happens to the parts of existing stays that fall outside
// a range being overwritten or deleted.
type Policy int

const (
	// PolicyReplace removes every stay that intersects the edited range, even
	// when only one of its days is touched.
	PolicyReplace Policy = iota
	// PolicyClip trims intersecting stays down to their days outside the
	// edited range, splitting a stay that strictly contains it.
	PolicyClip
)

// ParsePolicy maps "replace" and "clip" to a Policy. The empty string is replace.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return PolicyReplace, nil
	case "clip":
		return PolicyClip, nil
	}
	return 0, fmt.Errorf("unknown overlap policy %q (want replace or clip)", s)
}

func (p Policy) String() string {
	if p == PolicyClip {
		return "clip"
	}
	return "replace"
}

// Collection is one user's entries, sorted by start date.
// It is not safe for concurrent use; callers serialise access.
type Collection struct {
	owner   string
	policy  Policy
	entries []domain.Entry
}

// Option configures a Collection.
type Option func(*Collection)

// WithPolicy selects the overlap policy. The default is PolicyReplace.
func WithPolicy(p Policy) Option {
	return func(c *Collection) { c.policy = p }
}

// WithOwner stamps every entry written through the collection with userID.
func WithOwner(userID string) Option {
	return func(c *Collection) { c.owner = userID }
}

// New builds a collection from entries as loaded from storage. Entries are
// copied and sorted; existing overlaps are tolerated here and reported by Validate.
func New(entries []domain.Entry, opts ...Option) *Collection {
	c := &Collection{entries: make([]domain.Entry, len(entries))}
	copy(c.entries, entries)
	for _, opt := range opts {
		opt(c)
	}
	domain.SortEntries(c.entries)
	return c
}

// Clone returns an independent copy sharing no backing storage.
func (c *Collection) Clone() *Collection {
	out := *c
	out.entries = make([]domain.Entry, len(c.entries))
	copy(out.entries, c.entries)
	return &out
}

func (c *Collection) Policy() Policy { return c.policy }
func (c *Collection) Owner() string  { return c.owner }
func (c *Collection) Len() int       { return len(c.entries) }

// Entries returns a copy of all entries in collection order.
func (c *Collection) Entries() []domain.Entry {
	out := make([]domain.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Stays returns the stays in collection order.
func (c *Collection) Stays() []domain.Stay {
	return domain.StaysOf(c.entries)
}

// Get looks an entry up by ID.
func (c *Collection) Get(id uuid.UUID) (domain.Entry, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.entries[i], true
	}
	return nil, false
}

// Validate checks the whole collection for overlapping stays.
func (c *Collection) Validate() error {
	stays := c.Stays()
	if len(stays) == 0 {
		return nil
	}
	// Sorted by start: a stay overlaps an earlier one exactly when it starts on
	// or before the furthest end seen so far.
	furthest := stays[0]
	for _, s := range stays[1:] {
		if !s.StartDate.After(furthest.EndDate) {
			return overlapError(s, furthest)
		}
		if s.EndDate.After(furthest.EndDate) {
			furthest = s
		}
	}
	return nil
}

// Sync replaces entries with their persisted versions (matched by ID), picking
// up storage-assigned timestamps, and re-sorts.
func (c *Collection) Sync(stored []domain.Entry) {
	for _, e := range stored {
		if i := c.indexOf(e.EntryID()); i >= 0 {
			c.entries[i] = e
		} else {
			c.entries = append(c.entries, e)
		}
	}
	domain.SortEntries(c.entries)
}

func (c *Collection) indexOf(id uuid.UUID) int {
	for i, e := range c.entries {
		if e.EntryID() == id {
			return i
		}
	}
	return -1
}

// stamp assigns an ID when missing and the collection owner when set.
func (c *Collection) stamp(e domain.Entry) domain.Entry {
	b := domain.BaseOf(e)
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if c.owner != "" {
		b.UserID = c.owner
	}
	return domain.WithBase(e, b)
}

// commit installs next as the new entry list after checking that none of the
// upserted stays overlaps another stay. On failure c is left untouched.
func (c *Collection) commit(next []domain.Entry, change domain.ChangeSet) (domain.ChangeSet, error) {
	domain.SortEntries(next)
	if err := checkUpserts(next, change.Upserts); err != nil {
		return domain.ChangeSet{}, err
	}
	c.entries = next
	return change, nil
}

func checkUpserts(entries []domain.Entry, upserts []domain.Entry) error {
	stays := domain.StaysOf(entries)
	for _, u := range upserts {
		us, ok := u.(domain.Stay)
		if !ok {
			continue
		}
		for _, s := range stays {
			if s.ID != us.ID && s.Range().Overlaps(us.Range()) {
				return overlapError(us, s)
			}
		}
	}
	return nil
}

func overlapError(a, b domain.Stay) error {
	return fmt.Errorf("%w: %s (%s) overlaps %s (%s)",
		domain.ErrOverlap, a.Range(), a.Location, b.Range(), b.Location)
}
