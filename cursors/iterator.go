package cursors

import (
	"io"

	"go.llib.dev/seqcursor"
	"go.llib.dev/seqcursor/pkg/errorkit"
)

// Iterator is the pull-style iterator contract,
// where Next moves to the next value and Value returns it.
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// ToIterator adapts a cursor to the Iterator contract.
// The iterator continues from the cursor's current position and moves it along.
func ToIterator[T any](c seqcursor.Cursor[T]) Iterator[T] {
	return &cursorIter[T]{Cursor: c}
}

type cursorIter[T any] struct {
	Cursor seqcursor.Cursor[T]

	closed bool
	value  T
}

func (i *cursorIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *cursorIter[T]) Err() error {
	return nil
}

func (i *cursorIter[T]) Next() bool {
	if i.closed {
		return false
	}
	if !i.Cursor.HasNext() {
		return false
	}
	i.value = i.Cursor.Next()
	return true
}

func (i *cursorIter[T]) Value() T {
	return i.value
}

// FromIterator materializes the iterator and returns a cursor over its values.
// The iterator is closed in every case.
func FromIterator[T any](i Iterator[T]) (_ *BidirectionalSliceCursor[T], rErr error) {
	defer errorkit.Finish(&rErr, i.Close)
	vs := make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	if err := i.Err(); err != nil {
		return nil, err
	}
	return Bidirectional[T](vs), nil
}
