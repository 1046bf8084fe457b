package tough

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation marks operations a format does not implement,
// such as reading a MESH file back in (the format stores no geometry
// beyond node centers, so it is write-only).
var ErrUnsupportedOperation = errors.New("unsupported operation")

// FormatError reports fixed-width text that could not be converted to
// its declared column type.
type FormatError struct {
	Column int
	Text   string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("column %d: cannot parse %q: %v", e.Column, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// TypeError reports a parameter whose runtime category does not match
// the schema's declared type for its key.
type TypeError struct {
	Key      string
	Path     string
	Expected string
}

func (e *TypeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid type for parameter '%s' in %s (expected %s)", e.Key, e.Path, e.Expected)
	}
	return fmt.Sprintf("invalid type for parameter '%s' (expected %s)", e.Key, e.Expected)
}

// ValueError reports an invalid enumerated option or file content that
// fails a required structural check.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return e.Msg }

func valueErrorf(format string, args ...interface{}) error {
	return &ValueError{Msg: fmt.Sprintf(format, args...)}
}
