package usage

import "errors"

// ErrLimitReached indicates the user exhausted their daily AI call budget.
var ErrLimitReached = errors.New("limit reached")
