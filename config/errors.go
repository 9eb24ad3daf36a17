package config

import (
	"fmt"
	"strings"
)

// PatternError reports an include or exclude pattern that does not compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// ValueError reports a setting outside its allowed values.
type ValueError struct {
	Key     string
	Value   string
	Allowed []string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Key, e.Value, strings.Join(e.Allowed, ", "))
}
