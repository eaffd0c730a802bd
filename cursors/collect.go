package cursors

import "go.llib.dev/seqcursor"

// Collect drains the cursor and returns the remaining elements in forward order.
func Collect[T any](c seqcursor.Cursor[T]) []T {
	vs := make([]T, 0)
	for c.HasNext() {
		vs = append(vs, c.Next())
	}
	return vs
}

// CollectBackward drains the cursor with Prev,
// and returns the elements behind the current position, nearest first.
func CollectBackward[T any](c seqcursor.Reversable[T]) []T {
	vs := make([]T, 0)
	for c.HasPrev() {
		vs = append(vs, c.Prev())
	}
	return vs
}

// Count will iterate over and count the remaining elements.
func Count[T any](c seqcursor.Cursor[T]) int {
	var total int
	for c.HasNext() {
		c.Next()
		total++
	}
	return total
}
