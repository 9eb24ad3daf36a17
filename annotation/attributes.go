package annotation

import "strings"

// Attributes maps GTF attribute keys to their values. When a key is repeated
// the last occurrence wins.
type Attributes map[string]string

// Get returns the value for key and whether it was present.
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}

// Value returns the value for key, or def if key is absent.
func (a Attributes) Value(key, def string) string {
	if v, ok := a[key]; ok {
		return v
	}
	return def
}

// ParseAttributes parses a GTF attributes column. Segments are separated by
// ';' and split on their first space; surrounding double quotes are removed
// from values. A non-blank segment without a space yields a *ParseError.
func ParseAttributes(s string) (Attributes, error) {
	attrs := make(Attributes)
	for _, seg := range strings.Split(s, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		key, value, ok := strings.Cut(seg, " ")
		if !ok {
			return nil, &ParseError{Segment: seg, Err: ErrMissingSeparator}
		}
		attrs[key] = strings.Trim(value, `"`)
	}
	return attrs, nil
}
