// Package cursors provide cursor implementations over in-memory slices.
//
// The slice is captured at construction time.
// Changing the backing array while a cursor walks it is not supported.
package cursors

import (
	"go.llib.dev/seqcursor"
)

// Slice returns a forward cursor over the given values.
func Slice[T any](values []T) *SliceCursor[T] {
	return &SliceCursor[T]{values: values}
}

// Of is the variadic form of Slice.
func Of[T any](values ...T) *SliceCursor[T] {
	return Slice[T](values)
}

// SliceCursor is a forward-only cursor over a slice.
type SliceCursor[T any] struct {
	values []T
	index  int
}

var _ seqcursor.Cursor[int] = &SliceCursor[int]{}

func (c *SliceCursor[T]) HasNext() bool {
	return c.index < len(c.values)
}

// Next reads the element at the current position, then advances.
func (c *SliceCursor[T]) Next() T {
	if !c.HasNext() {
		panic(seqcursor.ErrOutOfBounds.F("next: index=%d len=%d", c.index, len(c.values)))
	}
	v := c.values[c.index]
	c.index++
	return v
}

func (c *SliceCursor[T]) Reset() {
	c.index = 0
}

// Position is the index of the element the next Next call returns.
func (c *SliceCursor[T]) Position() int {
	return c.index
}

func (c *SliceCursor[T]) Len() int {
	return len(c.values)
}

// Bidirectional returns a cursor over the given values that can also step backward.
func Bidirectional[T any](values []T) *BidirectionalSliceCursor[T] {
	return &BidirectionalSliceCursor[T]{SliceCursor: SliceCursor[T]{values: values}}
}

// BidirectionalSliceCursor shares the position of its SliceCursor for both directions.
type BidirectionalSliceCursor[T any] struct {
	SliceCursor[T]
}

var _ seqcursor.BidirectionalCursor[int] = &BidirectionalSliceCursor[int]{}

func (c *BidirectionalSliceCursor[T]) HasPrev() bool {
	return 0 < c.index
}

// Prev steps back first, then reads.
// Next followed by Prev returns the same element twice.
func (c *BidirectionalSliceCursor[T]) Prev() T {
	if !c.HasPrev() {
		panic(seqcursor.ErrOutOfBounds.F("prev: index=%d len=%d", c.index, len(c.values)))
	}
	c.index--
	return c.values[c.index]
}

// SeekEnd moves the position past the last element,
// so the whole sequence can be walked with Prev.
func (c *BidirectionalSliceCursor[T]) SeekEnd() {
	c.index = len(c.values)
}
