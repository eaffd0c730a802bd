package seqcursor_test

import (
	"fmt"

	"go.llib.dev/seqcursor"
	"go.llib.dev/seqcursor/cursors"
)

func ExampleCursor() {
	var c seqcursor.Cursor[string] = cursors.Slice([]string{"A", "B", "C"})
	for c.HasNext() {
		fmt.Println(c.Next())
	}
	// Output:
	// A
	// B
	// C
}

func ExampleBidirectionalCursor() {
	var c seqcursor.BidirectionalCursor[int] = cursors.Bidirectional([]int{1, 2, 3})
	for c.HasNext() {
		c.Next()
	}
	for c.HasPrev() {
		fmt.Println(c.Prev())
	}
	// Output:
	// 3
	// 2
	// 1
}
