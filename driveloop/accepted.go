package driveloop

import "sync"

// Accepted collects the elements whose outcome was true.
// Its Record method can be used directly as a Loop.OnOutcome.
type Accepted[T any] struct {
	m      sync.Mutex
	values []T
}

func (a *Accepted[T]) Record(v T, ok bool) {
	if !ok {
		return
	}
	a.m.Lock()
	defer a.m.Unlock()
	a.values = append(a.values, v)
}

// Values returns the accepted elements in the order they were recorded.
func (a *Accepted[T]) Values() []T {
	a.m.Lock()
	defer a.m.Unlock()
	return append([]T{}, a.values...)
}

func (a *Accepted[T]) Len() int {
	a.m.Lock()
	defer a.m.Unlock()
	return len(a.values)
}
