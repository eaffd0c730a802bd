package seqcursor

import "go.llib.dev/seqcursor/pkg/errorkit"

// ErrOutOfBounds is the panic cause when Next or Prev is called past the edge of the sequence.
// It signals caller misuse, and not the end of the data.
const ErrOutOfBounds errorkit.Error = "out of bounds"
