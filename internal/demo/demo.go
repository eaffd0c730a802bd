// Package demo simulates a remote check over a batch of items,
// driven one by one through a drive loop.
package demo

import (
	"context"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"

	"go.llib.dev/seqcursor/cursors"
	"go.llib.dev/seqcursor/driveloop"
	"go.llib.dev/seqcursor/pkg/errorkit"
	"go.llib.dev/seqcursor/pkg/logger"
)

const ErrInvalidConfig errorkit.Error = "invalid demo configuration"

type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// randomdata shares a single source between goroutines
var mutex sync.Mutex

// NewItems makes n items with random silly names.
func NewItems(n int) []Item {
	mutex.Lock()
	defer mutex.Unlock()
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{ID: i + 1, Name: randomdata.SillyName()})
	}
	return items
}

// RemoteCheck pretends to call a remote service about an item.
// It takes a random latency between MinLatency and MaxLatency, and fails one time in four.
type RemoteCheck struct {
	MinLatency time.Duration
	MaxLatency time.Duration
	// Logger defaults to logger.Default.
	Logger *logger.Logger
}

func (rc RemoteCheck) Do(ctx context.Context, item Item) bool {
	time.Sleep(rc.latency())
	ok := !(coinFlip() && coinFlip())
	rc.logger().Info(ctx, "doing some work",
		logger.Field("item", logger.Fields{"id": item.ID, "name": item.Name}),
		logger.Field("success", ok))
	return ok
}

func (rc RemoteCheck) logger() logger.Logger {
	if rc.Logger != nil {
		return *rc.Logger
	}
	return logger.Default
}

func (rc RemoteCheck) latency() time.Duration {
	if rc.MaxLatency <= rc.MinLatency {
		return rc.MinLatency
	}
	mutex.Lock()
	defer mutex.Unlock()
	return rc.MinLatency + time.Duration(randomdata.Number(int(rc.MaxLatency-rc.MinLatency)))
}

func coinFlip() bool {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Boolean()
}

type Config struct {
	Items      int
	MinLatency time.Duration
	MaxLatency time.Duration
	// Timeout bounds the waiting for the whole run.
	// Zero means no deadline.
	Timeout time.Duration
}

func (c Config) Validate() error {
	if c.Items < 0 {
		return ErrInvalidConfig.F("items must not be negative: %d", c.Items)
	}
	if c.MinLatency < 0 || c.MaxLatency < 0 {
		return ErrInvalidConfig.F("latency must not be negative")
	}
	if c.MaxLatency < c.MinLatency {
		return ErrInvalidConfig.F("max latency (%s) is below min latency (%s)", c.MaxLatency, c.MinLatency)
	}
	return nil
}

// Run checks freshly made items with a RemoteCheck, and returns the ones that passed.
func Run(ctx context.Context, cfg Config) ([]Item, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	// the run may outlive a timed out Run, so it keeps the logger it started with
	log := logger.Default
	var accepted driveloop.Accepted[Item]
	l := &driveloop.Loop[Item]{
		Cursor:    cursors.Slice(NewItems(cfg.Items)),
		Operation: RemoteCheck{MinLatency: cfg.MinLatency, MaxLatency: cfg.MaxLatency, Logger: &log},
		OnOutcome: accepted.Record,
		OnComplete: func() {
			log.Info(ctx, "all done", logger.Field("accepted", accepted.Len()))
		},
		Name:   "demo",
		Logger: &log,
	}
	l.Start(ctx)
	if err := l.Wait(ctx); err != nil {
		return accepted.Values(), err
	}
	return accepted.Values(), nil
}
