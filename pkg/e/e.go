package e

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound      = errors.New("not found")
	ErrInternal      = errors.New("internal error")
	ErrDeadline      = errors.New("deadline exceeded")
	ErrCanceled      = errors.New("context canceled")
	ErrNotConfigured = errors.New("database not configured")
)

// WrapError normalizes context and driver timeouts onto sentinel errors.
// Other driver errors keep their original text so the diagnostics report
// can show it.
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
