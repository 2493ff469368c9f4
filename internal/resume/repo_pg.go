package resume

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres with a JSONB data column.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the stored document for a user.
func (r *PGRepo) Get(ctx context.Context, userID string) (Document, bool, error) {
	const query = `
SELECT data
FROM resumes
WHERE user_id = $1`

	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, false, nil
		}
		return Document{}, false, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, false, fmt.Errorf("decode resume for user %s: %w", userID, err)
	}
	return doc, true, nil
}

// Set overwrites the stored document for a user.
func (r *PGRepo) Set(ctx context.Context, userID string, doc Document) error {
	const query = `
INSERT INTO resumes (user_id, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode resume for user %s: %w", userID, err)
	}
	_, err = r.DB.ExecContext(ctx, query, userID, raw)
	return err
}

var _ Repo = (*PGRepo)(nil)
