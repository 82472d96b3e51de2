package cabinet

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Store operations. Callers should match them
// with errors.Is since they are usually wrapped with the record name.
var (
	// ErrNotFound is returned when a named record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidName is returned for record names that could escape the
	// store directory.
	ErrInvalidName = errors.New("invalid record name")
)

// ParseError is returned when a record file exists but its content cannot
// be decoded as JSON in the store's encoding.
type ParseError struct {
	// Name is the record whose file failed to parse.
	Name string

	// Err is the underlying decode error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %q: malformed content: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CommitError is returned when a git invocation made by Commit fails. It
// carries the combined output of the failed command, which is where git
// puts the reason.
type CommitError struct {
	// Output is the combined stdout and stderr of the failed invocation.
	Output string

	// Err is the underlying execution error.
	Err error
}

func (e *CommitError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("git: %v", e.Err)
	}
	return fmt.Sprintf("git: %v: %s", e.Err, e.Output)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
