package annotation

// Format is the compression of an annotation stream.
type Format int

const (
	UNDEF Format = iota - 1
	PLAIN
	GZIP
	BGZF
	BZIP2
)

// String return the string representation of a Format
func (f Format) String() string {
	switch f {
	case PLAIN:
		return "plain"
	case GZIP:
		return "gzip"
	case BGZF:
		return "bgzf"
	case BZIP2:
		return "bzip2"
	default:
		return "UNKNOWN"
	}
}
