// Package seqcursor defines the cursor contract used across the module.
//
// A cursor walks a fully materialized, ordered sequence.
// It tracks a single position in the [0, length] range,
// where position == length means the cursor is exhausted in the forward direction,
// and position == 0 means there is nothing left behind it.
//
// Implementations live in the cursors package,
// and the driveloop package drives a cursor through asynchronous per-element work.
package seqcursor

// Cursor define a separate object that encapsulates traversing an ordered collection.
// Clients use a cursor to access and traverse a sequence without knowing its representation.
// https://en.wikipedia.org/wiki/Iterator_pattern
type Cursor[T any] interface {
	// HasNext reports whether Next can be called.
	// It has no side effects.
	HasNext() bool
	// Next returns the element at the current position, then moves the position forward by one.
	// Calling Next when HasNext is false is a contract violation and panics with ErrOutOfBounds.
	Next() T
	// Reset moves the position back to the start of the sequence.
	Reset()
}

// Reversable is the capability of stepping backward over the elements already crossed.
// It is kept apart from Cursor so forward-only consumers don't depend on it.
type Reversable[T any] interface {
	// HasPrev reports whether Prev can be called.
	HasPrev() bool
	// Prev moves the position backward by one, then returns the element at the new position.
	// Calling Prev when HasPrev is false is a contract violation and panics with ErrOutOfBounds.
	Prev() T
}

// BidirectionalCursor is a Cursor that can also walk backward.
type BidirectionalCursor[T any] interface {
	Cursor[T]
	Reversable[T]
}
