package resolve

import (
	"errors"
	"fmt"
)

// ErrNotConfigured marks a remote or fallback slot that has no source wired
// for the operation.
var ErrNotConfigured = errors.New("source not configured")

// ErrEmptyResult marks a source that answered with an empty collection where
// a non-empty one was semantically expected.
var ErrEmptyResult = errors.New("empty result from source")

// UpstreamError reports that both the primary and the fallback source failed
// for a strict operation.
type UpstreamError struct {
	Operation string
	Primary   error
	Fallback  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: primary: %v, fallback: %v", e.Operation, e.Primary, e.Fallback)
}
