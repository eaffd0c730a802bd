package driveloop

import (
	"context"

	"go.llib.dev/seqcursor"
)

// Drive starts a loop over the cursor and waits for it to complete.
// The deadline of ctx bounds the waiting only:
// when it is exceeded, Drive returns with the context error and the progress made so far,
// while the loop finishes in the background.
func Drive[T any](ctx context.Context, c seqcursor.Cursor[T], op Operation[T], onOutcome func(v T, ok bool)) (Stats, error) {
	l := &Loop[T]{
		Cursor:    c,
		Operation: op,
		OnOutcome: onOutcome,
	}
	l.Start(ctx)
	if err := l.Wait(ctx); err != nil {
		return l.Stats(), err
	}
	return l.Stats(), nil
}
