package cursors

import "go.llib.dev/seqcursor"

// Stub wraps a cursor, and lets tests replace any of its methods.
func Stub[T any](c seqcursor.Cursor[T]) *StubCursor[T] {
	return &StubCursor[T]{
		Cursor:      c,
		StubHasNext: c.HasNext,
		StubNext:    c.Next,
		StubReset:   c.Reset,
	}
}

type StubCursor[T any] struct {
	Cursor      seqcursor.Cursor[T]
	StubHasNext func() bool
	StubNext    func() T
	StubReset   func()
}

// wrapper

func (m *StubCursor[T]) HasNext() bool {
	return m.StubHasNext()
}

func (m *StubCursor[T]) Next() T {
	return m.StubNext()
}

func (m *StubCursor[T]) Reset() {
	m.StubReset()
}

// Reseting stubs

func (m *StubCursor[T]) ResetHasNext() {
	m.StubHasNext = m.Cursor.HasNext
}

func (m *StubCursor[T]) ResetNext() {
	m.StubNext = m.Cursor.Next
}

func (m *StubCursor[T]) ResetReset() {
	m.StubReset = m.Cursor.Reset
}
