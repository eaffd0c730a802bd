// Package logger provides tooling for structured logging.
// With logger, you can use context to add logging details to your call stack.
package logger

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/seqcursor/pkg/stringcase"
	"go.llib.dev/testcase/clock"
)

type Logger struct {
	Out io.Writer
	// Level is the minimum level that gets written out.
	// When empty, the level configured through the environment is used, which defaults to LevelInfo.
	Level Level

	Separator string

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// MarshalFunc is used to serialise the logging message event.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)
	// KeyFormatter will be used to format the logging field keys
	KeyFormatter func(string) string
}

const (
	levelDefaultKey   = "level"
	messageDefaultKey = "message"
	timestampKey      = "timestamp"
)

// outLock serialises writes, so log entries from concurrent goroutines don't interleave.
var outLock sync.Mutex

func (l Logger) Debug(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelDebug, msg, ds)
}

func (l Logger) Info(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelInfo, msg, ds)
}

func (l Logger) Warn(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelWarn, msg, ds)
}

func (l Logger) Error(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelError, msg, ds)
}

func (l Logger) Fatal(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelFatal, msg, ds)
}

func (l Logger) log(ctx context.Context, level Level, msg string, ds []LoggingDetail) {
	if !isLevelEnabled(l.getLevel(), level) {
		return
	}
	entry := l.toLogEntry(ctx, level, msg, clock.Now(), ds)
	bs, err := l.marshalFunc()(entry)
	if err != nil {
		return
	}
	outLock.Lock()
	defer outLock.Unlock()
	_, _ = l.writer().Write(append(bs, []byte(l.separator())...))
}

func (l Logger) getLevel() Level {
	if l.Level != "" {
		return l.Level
	}
	return defaultLevel
}

func (l Logger) getKeyFormatter() func(string) string {
	if l.KeyFormatter != nil {
		return l.KeyFormatter
	}
	return stringcase.ToSnake
}

func (l Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l Logger) coalesceKey(key, defaultKey string) string {
	if key == "" {
		key = defaultKey
	}
	return l.getKeyFormatter()(key)
}

func (l Logger) toLogEntry(ctx context.Context, level Level, msg string, ts time.Time, ds []LoggingDetail) logEntry {
	le := make(logEntry)
	for _, ld := range getLoggingDetailsFromContext(ctx) {
		ld.addTo(l, le)
	}
	for _, ld := range ds {
		ld.addTo(l, le)
	}
	le[l.coalesceKey(l.LevelKey, levelDefaultKey)] = level
	le[l.coalesceKey(l.MessageKey, messageDefaultKey)] = msg
	le[l.coalesceKey(l.TimestampKey, timestampKey)] = ts.Format(time.RFC3339)
	return le
}

func (l Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	switch os.PathSeparator {
	case '\\':
		return "\r\n"
	default:
		return "\n"
	}
}
