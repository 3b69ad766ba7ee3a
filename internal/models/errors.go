package models

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks a failed catalog or feedback read. Recommend
// requests fail fast when this is returned.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrWriteFailed marks a failed feedback append. Best-effort: callers
// report "feedback not recorded" and carry on.
var ErrWriteFailed = errors.New("feedback write failed")

// InvalidConstraintError rejects a malformed or out-of-range request
// field. The whole request fails; nothing partial is returned.
type InvalidConstraintError struct {
	Field  string
	Reason string
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid constraint %q: %s", e.Field, e.Reason)
}

// InvalidItemError marks a catalog row the fee calculator refuses to
// price, such as a negative base price.
type InvalidItemError struct {
	ItemID string
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item %q: %s", e.ItemID, e.Reason)
}
