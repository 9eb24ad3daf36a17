package annotation

import (
	"errors"
	"fmt"
)

var (
	// ErrShortLine is returned by Parse for lines with fewer than nine columns.
	ErrShortLine = errors.New("fewer than 9 columns")
	// ErrMissingSeparator reports an attribute segment without a key/value separator.
	ErrMissingSeparator = errors.New("missing key/value separator")
)

// ParseError is returned for annotation data that cannot be converted.
type ParseError struct {
	Line    int
	Segment string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Segment)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Segment)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
