package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

// Postgres persists the collection in a shared row store, scoped to an
// opaque user identity so multiple users can share one database. Save keeps
// total-overwrite semantics by replacing the user's rows in one transaction.
type Postgres struct {
	pool *pgxpool.Pool
	user string
}

const createEntriesTable = `
CREATE TABLE IF NOT EXISTS mood_entries (
	user_id   text NOT NULL,
	schema    text NOT NULL,
	position  int  NOT NULL,
	id        text NOT NULL,
	recorded  timestamptz NOT NULL,
	created   timestamptz NOT NULL,
	mood      text NOT NULL,
	situation text NOT NULL,
	thoughts  text NOT NULL DEFAULT '',
	emotion   text NOT NULL DEFAULT '',
	behavior  text NOT NULL DEFAULT '',
	PRIMARY KEY (user_id, schema, id)
);
`

func NewPostgres(ctx context.Context, dsn, user string) (*Postgres, error) {
	if dsn == "" {
		return nil, errors.New("store: postgres backend requires MOODLOG_POSTGRES_DSN")
	}
	if user == "" {
		return nil, errors.New("store: postgres backend requires a user identity")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, createEntriesTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ensure mood_entries table: %w", err)
	}
	return &Postgres{pool: pool, user: user}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) Save(ctx context.Context, entries []*entry.Entry) error {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("store: begin save: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM mood_entries WHERE user_id = $1 AND schema = $2`,
		p.user, entry.CurrentSchema); err != nil {
		return fmt.Errorf("store: clear previous snapshot: %w", err)
	}

	for i, e := range entries {
		if _, err := tx.Exec(ctx, `
			INSERT INTO mood_entries
			(user_id, schema, position, id, recorded, created, mood, situation, thoughts, emotion, behavior)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.user, entry.CurrentSchema, i, e.ID,
			e.Recorded.Time, e.Created.Time, e.Mood.String(),
			e.Situation, e.Thoughts, e.Emotion, e.Behavior); err != nil {
			return fmt.Errorf("store: insert entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("store: commit save: %w", err)
	}
	return nil
}

func (p *Postgres) Load(ctx context.Context) ([]*entry.Entry, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, recorded, created, mood, situation, thoughts, emotion, behavior
		FROM mood_entries
		WHERE user_id = $1 AND schema = $2
		ORDER BY position`,
		p.user, entry.CurrentSchema)
	if err != nil {
		return nil, fmt.Errorf("store: load snapshot: %w", err)
	}
	defer rows.Close()

	entries := []*entry.Entry{}
	for rows.Next() {
		var (
			e        entry.Entry
			recorded time.Time
			created  time.Time
			moodKey  string
		)
		if err := rows.Scan(&e.ID, &recorded, &created, &moodKey,
			&e.Situation, &e.Thoughts, &e.Emotion, &e.Behavior); err != nil {
			return nil, fmt.Errorf("store: scan entry: %w", err)
		}
		m, err := mood.Parse(moodKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		e.Schema = entry.CurrentSchema
		e.Recorded = entry.Timestamp{Time: recorded}
		e.Created = entry.Timestamp{Time: created}
		e.Mood = m
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: load snapshot: %w", err)
	}
	return entries, nil
}
