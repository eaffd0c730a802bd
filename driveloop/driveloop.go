// Package driveloop drives a cursor through asynchronous, best-effort work.
//
// The loop pulls one element at a time, hands it to an Operation running on its own goroutine,
// and waits for the boolean outcome before pulling the next element.
// Both outcomes continue the iteration; a false outcome is data, not an error.
// When the cursor is exhausted, the completion callback fires exactly once.
package driveloop

import (
	"context"
	"sync"
	"sync/atomic"

	uuid "github.com/satori/go.uuid"

	"go.llib.dev/seqcursor"
	"go.llib.dev/seqcursor/internal/metrics"
	"go.llib.dev/seqcursor/pkg/errorkit"
	"go.llib.dev/seqcursor/pkg/logger"
)

const (
	ErrAlreadyStarted   errorkit.Error = "drive loop is already started"
	ErrMissingCursor    errorkit.Error = "drive loop has no cursor"
	ErrMissingOperation errorkit.Error = "drive loop has no operation"
)

const DefaultName = "default"

// Operation is the per-element unit of work.
// Do resolves exactly once with a definite outcome.
// It is executed on a goroutine distinct from the one that started the loop.
type Operation[T any] interface {
	Do(ctx context.Context, v T) (ok bool)
}

// OperationFunc enables to use anonymous functions as an Operation.
type OperationFunc[T any] func(ctx context.Context, v T) bool

func (fn OperationFunc[T]) Do(ctx context.Context, v T) bool { return fn(ctx, v) }

// Loop is a single, one-shot run of the drive loop pattern.
// Configure it through its exported fields, then call Start.
type Loop[T any] struct {
	Cursor    seqcursor.Cursor[T]
	Operation Operation[T]
	// OnOutcome is called with every resolved element, in the cursor's traversal order.
	// It is always called from the loop's own goroutine.
	OnOutcome func(v T, ok bool)
	// OnComplete is the completion notifier.
	// It is called exactly once, after the last outcome is reported, and before Done is closed.
	OnComplete func()
	// Name labels the metrics and log entries of the loop.
	// Defaults to DefaultName.
	Name string
	// Logger receives the loop's log entries.
	// When nil, logger.Default is copied at Start.
	Logger *logger.Logger

	started atomic.Bool
	init    sync.Once
	done    chan struct{}
	runID   uuid.UUID
	log     logger.Logger

	resolved atomic.Int64
	accepted atomic.Int64
}

// Stats is a snapshot of the loop's progress.
type Stats struct {
	Resolved int
	Accepted int
	Rejected int
}

// Start validates the loop and kicks off the iteration in the background.
// Values of ctx are passed along to the operations, but its cancellation is not:
// once started, the loop runs until the cursor is exhausted.
// The logger is fixed at Start, later changes to logger.Default don't reach a running loop.
// Starting a Loop twice is a contract violation and panics with ErrAlreadyStarted.
func (l *Loop[T]) Start(ctx context.Context) {
	if l.Cursor == nil {
		panic(ErrMissingCursor)
	}
	if l.Operation == nil {
		panic(ErrMissingOperation)
	}
	if !l.started.CompareAndSwap(false, true) {
		panic(ErrAlreadyStarted.F("name=%s", l.name()))
	}
	l.lazyInit()
	l.runID = uuid.NewV4()
	l.log = logger.Default
	if l.Logger != nil {
		l.log = *l.Logger
	}
	ctx = context.WithoutCancel(ctx)
	ctx = logger.ContextWith(ctx, logger.Field("drive_loop", logger.Fields{
		"name":   l.name(),
		"run_id": l.runID.String(),
	}))
	go l.run(ctx)
}

// Done is closed once the loop has completed.
func (l *Loop[T]) Done() <-chan struct{} {
	l.lazyInit()
	return l.done
}

// Wait blocks until the loop completes, or the context is done.
// Hitting the deadline of ctx doesn't stop the loop, it only gives up the waiting.
func (l *Loop[T]) Wait(ctx context.Context) error {
	select {
	case <-l.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunID identifies the run in the log entries.
// It is set by Start.
func (l *Loop[T]) RunID() uuid.UUID {
	return l.runID
}

func (l *Loop[T]) Stats() Stats {
	resolved := int(l.resolved.Load())
	accepted := int(l.accepted.Load())
	return Stats{
		Resolved: resolved,
		Accepted: accepted,
		Rejected: resolved - accepted,
	}
}

func (l *Loop[T]) lazyInit() {
	l.init.Do(func() { l.done = make(chan struct{}) })
}

func (l *Loop[T]) name() string {
	if l.Name == "" {
		return DefaultName
	}
	return l.Name
}

func (l *Loop[T]) run(ctx context.Context) {
	l.log.Debug(ctx, "drive loop started", l.sizeField())
	// a single slot, so the operation goroutine never blocks on handing back its outcome
	outcomes := make(chan bool, 1)
	for l.Cursor.HasNext() {
		v := l.Cursor.Next()
		go l.dispatch(ctx, v, outcomes)
		ok := <-outcomes
		l.report(ctx, v, ok)
	}
	l.complete(ctx)
}

func (l *Loop[T]) dispatch(ctx context.Context, v T, outcomes chan<- bool) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error(ctx, "drive loop operation panicked", logger.ErrField(errorkit.FromRecover(r)))
			panic(r)
		}
	}()
	defer metrics.TrackDuration(l.name())()
	outcomes <- l.Operation.Do(ctx, v)
}

func (l *Loop[T]) report(ctx context.Context, v T, ok bool) {
	position := l.resolved.Add(1)
	if ok {
		l.accepted.Add(1)
	}
	metrics.TrackOutcome(l.name(), ok)
	l.log.Debug(ctx, "drive loop element resolved",
		logger.Field("position", position-1),
		logger.Field("ok", ok))
	if l.OnOutcome != nil {
		l.OnOutcome(v, ok)
	}
}

func (l *Loop[T]) complete(ctx context.Context) {
	stats := l.Stats()
	l.log.Info(ctx, "drive loop completed", logger.Fields{
		"resolved": stats.Resolved,
		"accepted": stats.Accepted,
		"rejected": stats.Rejected,
	})
	metrics.TrackCompletion(l.name())
	if l.OnComplete != nil {
		l.OnComplete()
	}
	close(l.done)
}

func (l *Loop[T]) sizeField() logger.LoggingDetail {
	sized, ok := l.Cursor.(interface{ Len() int })
	if !ok {
		return logger.Fields{}
	}
	return logger.Field("size", sized.Len())
}
