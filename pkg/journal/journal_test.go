package journal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

// memoryPersistence is an in-memory save/load fake with a switchable failure
// mode.
type memoryPersistence struct {
	mu       sync.Mutex
	snapshot []*entry.Entry
	failSave bool
	failLoad bool
	saves    int
}

func (m *memoryPersistence) Save(_ context.Context, entries []*entry.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave {
		return errors.New("disk full")
	}
	m.snapshot = make([]*entry.Entry, len(entries))
	copy(m.snapshot, entries)
	m.saves++
	return nil
}

func (m *memoryPersistence) Load(_ context.Context) ([]*entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoad {
		return nil, errors.New("corrupt snapshot")
	}
	out := make([]*entry.Entry, len(m.snapshot))
	copy(out, m.snapshot)
	return out, nil
}

func newTestJournal() (*Journal, *memoryPersistence) {
	mp := &memoryPersistence{}
	j := New(mp)
	return j, mp
}

func TestCreateRejectsEmptySituation(t *testing.T) {
	ctx := context.Background()
	j, mp := newTestJournal()

	for _, situation := range []string{"", "   ", "\t\n"} {
		_, err := j.Create(ctx, entry.Draft{Mood: mood.Sad, Situation: situation})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("situation %q: got %v, want ErrValidation", situation, err)
		}
	}
	if j.Len() != 0 {
		t.Fatalf("collection size changed to %d on rejected drafts", j.Len())
	}
	if mp.saves != 0 {
		t.Fatalf("persistence written %d times on rejected drafts", mp.saves)
	}
}

func TestCreateScenario(t *testing.T) {
	ctx := context.Background()
	j, mp := newTestJournal()

	before := time.Now()
	e, err := j.Create(ctx, entry.Draft{
		Mood:      mood.Sad,
		Situation: "Missed the bus",
		Thoughts:  "I'm always late",
		When:      entry.Today,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	after := time.Now()

	all := j.List()
	if len(all) != 1 {
		t.Fatalf("list length %d, want 1", len(all))
	}
	got := all[0]
	if got.ID != e.ID || got.Mood != mood.Sad || got.Situation != "Missed the bus" || got.Thoughts != "I'm always late" {
		t.Fatalf("unexpected entry %+v", got)
	}
	if got.Recorded.Before(before) || got.Recorded.After(after) {
		t.Fatalf("recorded %v outside [%v, %v]", got.Recorded, before, after)
	}
	if mp.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", mp.saves)
	}
}

func TestCreateAssignsUniqueIDsAndPrepends(t *testing.T) {
	ctx := context.Background()
	j, _ := newTestJournal()

	ids := make(map[string]bool)
	var lastID string
	for i := 0; i < 20; i++ {
		e, err := j.Create(ctx, entry.Draft{Mood: mood.Neutral, Situation: "day"})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if ids[e.ID] {
			t.Fatalf("duplicate id %s", e.ID)
		}
		ids[e.ID] = true
		lastID = e.ID
	}

	all := j.List()
	if all[0].ID != lastID {
		t.Fatalf("most recent entry not first: got %s, want %s", all[0].ID, lastID)
	}
}

func TestCreateRollsBackOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	j, mp := newTestJournal()

	if _, err := j.Create(ctx, entry.Draft{Mood: mood.Happy, Situation: "ok"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mp.failSave = true
	_, err := j.Create(ctx, entry.Draft{Mood: mood.Sad, Situation: "doomed"})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("got %v, want ErrPersistence", err)
	}
	if j.Len() != 1 {
		t.Fatalf("in-memory collection diverged from persisted state: len %d", j.Len())
	}
	if len(mp.snapshot) != 1 {
		t.Fatalf("persisted snapshot changed on failed save: len %d", len(mp.snapshot))
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	j, mp := newTestJournal()

	e, err := j.Create(ctx, entry.Draft{Mood: mood.Angry, Situation: "spilled coffee"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := j.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if j.Len() != 0 {
		t.Fatalf("entry not removed")
	}
	savesAfterFirst := mp.saves

	// Second delete of the same id is a silent no-op, no extra save.
	if err := j.Delete(ctx, e.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if mp.saves != savesAfterFirst {
		t.Fatalf("no-op delete wrote persistence")
	}

	if err := j.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("delete of unknown id: %v", err)
	}
}

func TestDeleteRollsBackOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	j, mp := newTestJournal()

	e, err := j.Create(ctx, entry.Draft{Mood: mood.Happy, Situation: "keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mp.failSave = true
	if err := j.Delete(ctx, e.ID); !errors.Is(err, ErrPersistence) {
		t.Fatalf("got %v, want ErrPersistence", err)
	}
	if j.Len() != 1 {
		t.Fatal("entry removed despite failed save")
	}
}

func TestLoadAllRecoversFromFailure(t *testing.T) {
	ctx := context.Background()
	j, mp := newTestJournal()

	if _, err := j.Create(ctx, entry.Draft{Mood: mood.Happy, Situation: "x"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mp.failLoad = true
	if err := j.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll should never fail fatally, got %v", err)
	}
	if j.Len() != 0 {
		t.Fatalf("expected empty collection after failed load, got %d", j.Len())
	}
}

func TestLoadAllRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	j, mp := newTestJournal()

	first, _ := j.Create(ctx, entry.Draft{Mood: mood.Sad, Situation: "one"})
	second, _ := j.Create(ctx, entry.Draft{Mood: mood.Happy, Situation: "two"})

	other := New(mp)
	if err := other.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	all := other.List()
	if len(all) != 2 {
		t.Fatalf("restored %d entries, want 2", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatal("store order not preserved across load")
	}
}
