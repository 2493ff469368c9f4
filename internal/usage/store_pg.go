package usage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type pgStore struct {
	DB    *sql.DB
	limit int
}

// NewPGStore constructs a Postgres-backed usage store.
func NewPGStore(db *sql.DB, limit int) *pgStore {
	if limit <= 0 {
		limit = 50
	}
	return &pgStore{DB: db, limit: limit}
}

func (s *pgStore) Get(ctx context.Context, userID string) (Usage, error) {
	return s.ensure(ctx, userID)
}

func (s *pgStore) EnsurePeriod(ctx context.Context, userID string) (Usage, error) {
	return s.ensure(ctx, userID)
}

func (s *pgStore) Consume(ctx context.Context, userID string, n int) (Usage, error) {
	if n <= 0 {
		return s.ensure(ctx, userID)
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u, err := s.lockAndEnsure(ctx, tx, userID)
	if err != nil {
		return Usage{}, err
	}

	if u.Used+n > u.Limit {
		err = ErrLimitReached
		return Usage{}, err
	}
	u.Used += n
	if _, err = tx.ExecContext(ctx, `
UPDATE ai_usage SET used = $1 WHERE user_id = $2`, u.Used, userID); err != nil {
		return Usage{}, err
	}
	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) Reset(ctx context.Context, userID string) (Usage, error) {
	now := time.Now().UTC()
	resetsAt := now.Add(window)
	if _, err := s.DB.ExecContext(ctx, `
INSERT INTO ai_usage (user_id, used, usage_limit, resets_at)
VALUES ($1, 0, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET used = 0, resets_at = EXCLUDED.resets_at`, userID, s.limit, resetsAt); err != nil {
		return Usage{}, err
	}
	return Usage{Limit: s.limit, Used: 0, ResetsAt: resetsAt}, nil
}

func (s *pgStore) ensure(ctx context.Context, userID string) (Usage, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u, err := s.lockAndEnsure(ctx, tx, userID)
	if err != nil {
		return Usage{}, err
	}
	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

// lockAndEnsure reads the row FOR UPDATE, creating or rolling the window
// forward when needed.
func (s *pgStore) lockAndEnsure(ctx context.Context, tx *sql.Tx, userID string) (Usage, error) {
	now := time.Now().UTC()

	var u Usage
	err := tx.QueryRowContext(ctx, `
SELECT used, usage_limit, resets_at FROM ai_usage WHERE user_id = $1 FOR UPDATE`, userID).
		Scan(&u.Used, &u.Limit, &u.ResetsAt)
	if errors.Is(err, sql.ErrNoRows) {
		u = Usage{Limit: s.limit, Used: 0, ResetsAt: now.Add(window)}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO ai_usage (user_id, used, usage_limit, resets_at)
VALUES ($1, $2, $3, $4)`, userID, u.Used, u.Limit, u.ResetsAt); err != nil {
			return Usage{}, err
		}
		return u, nil
	}
	if err != nil {
		return Usage{}, err
	}

	if !now.Before(u.ResetsAt) {
		u.Used = 0
		u.ResetsAt = now.Add(window)
		if _, err := tx.ExecContext(ctx, `
UPDATE ai_usage SET used = 0, resets_at = $1 WHERE user_id = $2`, u.ResetsAt, userID); err != nil {
			return Usage{}, err
		}
	}
	return u, nil
}

var _ store = (*pgStore)(nil)
