package errorkit

import "errors"

// Finish merges the error of blk into the named return error of the caller.
// It is meant to be deferred:
//
//	defer errorkit.Finish(&returnErr, iter.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}

// Merge combines the non nil errors into one.
// It returns nil when there is none, and the error itself when there is only one.
func Merge(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return errors.Join(nonNil...)
	}
}
