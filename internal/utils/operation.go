package utils

import (
	"context"

	"github.com/google/uuid"
)

// NewOperationID returns a time-ordered id for a user operation. Ids of
// operations started later sort after earlier ones in the log file.
func NewOperationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// StartOperation attaches a fresh operation id to ctx unless one is already
// present, and returns the id in use.
func StartOperation(ctx context.Context) (context.Context, string) {
	if id, ok := GetOperationIDFromContext(ctx); ok && id != "" {
		return ctx, id
	}
	id := NewOperationID()
	return WithOperationID(ctx, id), id
}
