package errorkit

import "fmt"

// Error is a string based error type, so sentinel errors can be declared as constants.
//
//	const ErrOutOfBounds errorkit.Error = "out of bounds"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches a cause to the Error.
// The result matches both the Error and the cause with errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &wrapped{kind: err, cause: cause}
}

// F wraps a formatted cause, the way fmt.Errorf would make one.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type wrapped struct {
	kind  Error
	cause error
}

func (w *wrapped) Error() string {
	return fmt.Sprintf("[%s] %s", w.kind, w.cause.Error())
}

func (w *wrapped) Unwrap() []error { return []error{w.kind, w.cause} }
