package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moodlog/pkg/entry"
)

// Persistence is the save/load contract the journal depends on. Save has
// total-overwrite semantics: every call replaces the whole persisted
// collection, so a failed write can lose the latest mutation but never leave
// partial state behind.
type Persistence interface {
	Save(ctx context.Context, entries []*entry.Entry) error
	Load(ctx context.Context) ([]*entry.Entry, error)
}

// ErrCorrupt reports that a persisted snapshot exists but cannot be decoded.
var ErrCorrupt = errors.New("store: snapshot is corrupt")

// Load creates a Persistence for the configured backend.
func Load(ctx context.Context, cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case BackendPostgres:
		return NewPostgres(ctx, cfg.DSN(), cfg.User())
	case BackendLocal, "":
		return NewDiskv(cfg.BasePath()), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}

// snapshotKey namespaces the persisted collection by schema revision, so an
// incompatible schema starts from an empty collection instead of migrating.
func snapshotKey() string {
	return "entries." + entry.CurrentSchema
}

// NewDiskv returns a local key-value backed Persistence rooted at basePath.
func NewDiskv(basePath string) Persistence {
	flatTransform := func(s string) []string { return []string{} }
	return &diskvPersistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

type diskvPersistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *diskvPersistence) Save(_ context.Context, entries []*entry.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := p.d.Write(snapshotKey(), data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}

func (p *diskvPersistence) Load(_ context.Context) ([]*entry.Entry, error) {
	val, err := p.d.Read(snapshotKey())
	if err != nil {
		if os.IsNotExist(err) {
			return []*entry.Entry{}, nil
		}
		return nil, fmt.Errorf("store: read snapshot: %w", err)
	}

	var entries []*entry.Entry
	if err := json.Unmarshal(val, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if entries == nil {
		entries = []*entry.Entry{}
	}
	return entries, nil
}
