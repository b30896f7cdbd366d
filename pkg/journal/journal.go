// Package journal owns the authoritative entry collection. All mutations go
// through a Journal, which keeps the in-memory collection and the persisted
// snapshot in step: a mutation is not committed until the save succeeds.
package journal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/store"
)

var (
	// ErrValidation reports a rejected draft; the collection is unchanged.
	ErrValidation = errors.New("journal: situation is required")

	// ErrPersistence wraps a failed save; the attempted mutation was rolled
	// back and the in-memory collection still matches what is persisted.
	ErrPersistence = errors.New("journal: persistence failed")

	errNoPersistence = errors.New("journal: no persistence configured")
)

// Journal is the single source of truth for the entry collection, ordered
// most-recently-created first. Mutations are serialized under a mutex: there
// is one logical writer, and overlapping saves against the persistence
// collaborator cannot race.
type Journal struct {
	mu          sync.Mutex
	persistence store.Persistence
	entries     []*entry.Entry

	// now is swappable for tests.
	now func() time.Time
}

func New(p store.Persistence) *Journal {
	return &Journal{
		persistence: p,
		entries:     []*entry.Entry{},
		now:         time.Now,
	}
}

// LoadAll replaces the collection from the persistence collaborator. A
// missing or corrupt snapshot starts an empty collection; load never fails
// fatally.
func (j *Journal) LoadAll(ctx context.Context) error {
	if j.persistence == nil {
		return errNoPersistence
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	loaded, err := j.persistence.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "journal: starting empty, snapshot unreadable: %v\n", err)
		j.entries = []*entry.Entry{}
		return nil
	}
	j.entries = loaded
	return nil
}

// Create validates the draft, materializes the entry, prepends it, and
// persists the whole collection before reporting success. On a failed save
// the prepend is rolled back and the error surfaces wrapped in
// ErrPersistence.
func (j *Journal) Create(ctx context.Context, d entry.Draft) (*entry.Entry, error) {
	if j.persistence == nil {
		return nil, errNoPersistence
	}
	if !d.Valid() {
		return nil, ErrValidation
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	e := entry.New(d, j.now())
	updated := make([]*entry.Entry, 0, len(j.entries)+1)
	updated = append(updated, e)
	updated = append(updated, j.entries...)

	if err := j.persistence.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	j.entries = updated
	return e, nil
}

// Delete removes the entry with the given id and persists the result. A
// missing id is a silent no-op, so Delete is idempotent. Confirmation is the
// caller's job; the journal removes unconditionally.
func (j *Journal) Delete(ctx context.Context, id string) error {
	if j.persistence == nil {
		return errNoPersistence
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	idx := -1
	for i, e := range j.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	updated := make([]*entry.Entry, 0, len(j.entries)-1)
	updated = append(updated, j.entries[:idx]...)
	updated = append(updated, j.entries[idx+1:]...)

	if err := j.persistence.Save(ctx, updated); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	j.entries = updated
	return nil
}

// List returns a copy of the collection in store order: most recently
// created first. Backdated entries still sit at the front; display order is
// insertion order, not logical-date order.
func (j *Journal) List() []*entry.Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]*entry.Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
