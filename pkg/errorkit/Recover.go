package errorkit

import "fmt"

// FromRecover turns a value returned by recover() into an error.
// It returns nil when nothing was recovered.
func FromRecover(r any) error {
	switch r := r.(type) {
	case nil:
		return nil
	case error:
		return r
	default:
		return fmt.Errorf("%v", r)
	}
}
