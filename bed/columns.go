package bed

import "fmt"

// Columns selects the BED output layout.
type Columns int

const (
	UNDEF Columns = iota - 1
	// Simple writes chrom, start, end and name.
	Simple
	// Detailed writes chrom, start, end, strand, name and type.
	Detailed
)

// ParseColumns returns the Columns named by s.
func ParseColumns(s string) (Columns, error) {
	switch s {
	case "simple":
		return Simple, nil
	case "detailed":
		return Detailed, nil
	}
	return UNDEF, fmt.Errorf("unknown bed columns %q (want simple or detailed)", s)
}

// Width returns the number of fields written per record.
func (c Columns) Width() int {
	switch c {
	case Simple:
		return 4
	case Detailed:
		return 6
	}
	return 0
}

// String return the string representation of a Columns value
func (c Columns) String() string {
	switch c {
	case Simple:
		return "simple"
	case Detailed:
		return "detailed"
	default:
		return "UNKNOWN"
	}
}
