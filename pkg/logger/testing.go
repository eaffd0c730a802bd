package logger

import (
	"bytes"
	"sync"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) *Buffer {
	tb.Helper()
	og := Default // pass by value copy
	tb.Cleanup(func() { Default = og })
	buf := &Buffer{}
	Default.Out = buf
	return buf
}

// Buffer is a bytes.Buffer that is safe to write from the goroutines of the code under test,
// while the test reads it.
type Buffer struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.m.Lock()
	defer b.m.Unlock()
	return b.buf.Write(p)
}

func (b *Buffer) String() string {
	b.m.Lock()
	defer b.m.Unlock()
	return b.buf.String()
}

func (b *Buffer) Bytes() []byte {
	b.m.Lock()
	defer b.m.Unlock()
	return append([]byte(nil), b.buf.Bytes()...)
}
