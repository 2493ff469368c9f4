package resume

import (
	"context"
	"errors"
)

// Repo persists one resume document per user, overwritten wholesale.
type Repo interface {
	// Get returns the stored document and whether one exists.
	Get(ctx context.Context, userID string) (Document, bool, error)

	// Set overwrites the stored document for the user.
	Set(ctx context.Context, userID string, doc Document) error
}

// ErrInvalidInput marks caller mistakes such as unknown fields or types.
var ErrInvalidInput = errors.New("invalid input")
