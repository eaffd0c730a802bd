package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.llib.dev/seqcursor/pkg/errorkit"
	"go.llib.dev/seqcursor/pkg/logger"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func TestLogger_smoke(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	t.Run("output is a valid JSON by default", func(t *testing.T) {
		ctx := context.Background()
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf}

		expected := rnd.Repeat(3, 7, func() {
			l.Info(ctx, rnd.String())
		})

		dec := json.NewDecoder(buf)

		var got int
		for dec.More() {
			got++
			msg := map[string]any{}
			assert.NoError(t, dec.Decode(&msg))
			assert.NotEmpty(t, msg)
		}

		assert.Equal(t, expected, got)

		t.Run("but marshaling can be configured through the MarshalFunc", func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := logger.Logger{Out: buf, MarshalFunc: func(a any) ([]byte, error) {
				assert.Contain(t, fmt.Sprintf("%#v", a), "msg")
				return []byte("Hello, world!"), nil
			}}
			l.Info(ctx, "msg")
			assert.Contain(t, buf.String(), "Hello, world!")
		})
	})

	t.Run("log entries split by lines", func(t *testing.T) {
		ctx := context.Background()
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf, Separator: "|"}
		expected := rnd.Repeat(3, 7, func() {
			l.Info(ctx, rnd.String())
		})
		gotEntries := strings.Split(buf.String(), "|")
		if li := len(gotEntries) - 1; gotEntries[li] == "" {
			gotEntries = gotEntries[:li]
		}
		assert.Equal(t, expected, len(gotEntries))
	})

	t.Run("message, level and all details are logged, including from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf, Level: logger.LevelDebug}

		ctx := context.Background()
		ctx = logger.ContextWith(ctx, logger.Field("foo", "bar"))
		ctx = logger.ContextWith(ctx, logger.Fields{"bar": 42})

		l.Info(ctx, "a", logger.Field("info", "level"))
		assert.Contain(t, buf.String(), `"info":"level"`)
		assert.Contain(t, buf.String(), `"foo":"bar"`)
		assert.Contain(t, buf.String(), `"message":"a"`)
		assert.Contain(t, buf.String(), `"bar":42`)
		assert.Contain(t, buf.String(), `"level":"info"`)
		assert.Contain(t, buf.String(), `"timestamp":"`)

		l.Debug(ctx, "b", logger.Field("debug", "level"))
		assert.Contain(t, buf.String(), `"message":"b"`)
		assert.Contain(t, buf.String(), `"level":"debug"`)
		l.Warn(ctx, "c")
		assert.Contain(t, buf.String(), `"level":"warn"`)
		l.Error(ctx, "d")
		assert.Contain(t, buf.String(), `"level":"error"`)
		l.Fatal(ctx, "e")
		assert.Contain(t, buf.String(), `"level":"fatal"`)
	})

	t.Run("inner context details overwrite the outer ones", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf}
		ctx := logger.ContextWith(context.Background(), logger.Field("foo", "outer"))
		ctx = logger.ContextWith(ctx, logger.Field("foo", "inner"))
		l.Info(ctx, "msg")
		assert.Contain(t, buf.String(), `"foo":"inner"`)
		assert.NotContain(t, buf.String(), `"outer"`)
	})

	t.Run("keys are formatted into snake case", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf}
		l.Info(context.Background(), "msg", logger.Field("runID", "x"))
		assert.Contain(t, buf.String(), `"run_id":"x"`)
	})

	t.Run("keys can be configured", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf}
		l.MessageKey = "msg"
		l.LevelKey = "lvl"
		l.Info(context.Background(), "foo")
		assert.Contain(t, buf.String(), `"msg":"foo"`)
		assert.Contain(t, buf.String(), `"lvl":"info"`)
	})

	t.Run("entries below the configured level are skipped", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf, Level: logger.LevelWarn}
		l.Debug(context.Background(), "debug")
		l.Info(context.Background(), "info")
		assert.Empty(t, buf.String())
		l.Warn(context.Background(), "warn")
		assert.Contain(t, buf.String(), `"message":"warn"`)
	})
}

func TestErrField(t *testing.T) {
	const ErrKind errorkit.Error = "kind"

	t.Run("nil error adds nothing", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.Logger{Out: buf}.Info(context.Background(), "msg", logger.ErrField(nil))
		assert.NotContain(t, buf.String(), `"error"`)
	})
	t.Run("plain error", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.Logger{Out: buf}.Info(context.Background(), "msg", logger.ErrField(errors.New("boom")))
		assert.Contain(t, buf.String(), `"error":{"message":"boom"}`)
	})
	t.Run("error tagged with a constant", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.Logger{Out: buf}.Info(context.Background(), "msg", logger.ErrField(ErrKind.F("index=%d", 1)))
		assert.Contain(t, buf.String(), `"code":"kind"`)
		assert.Contain(t, buf.String(), `"message":"[kind] index=1"`)
	})
}

func TestParseLevel(t *testing.T) {
	level, ok := logger.ParseLevel("W")
	assert.True(t, ok)
	assert.Equal(t, logger.LevelWarn, level)
	_, ok = logger.ParseLevel("nope")
	assert.False(t, ok)
}
