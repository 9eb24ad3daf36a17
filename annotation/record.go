package annotation

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is a single GTF data line.
type Record struct {
	Chrom      string
	Source     string
	Feature    string
	Start      string
	End        string
	Score      string
	Strand     string
	Frame      string
	Attributes string
}

// IsComment reports whether line is a comment or metadata line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// Parse splits a GTF data line into a Record. Columns past the ninth are
// ignored. Coordinates are kept verbatim until Interval is called.
func Parse(line string) (*Record, error) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < 9 {
		return nil, ErrShortLine
	}
	return &Record{
		Chrom:      fields[0],
		Source:     fields[1],
		Feature:    fields[2],
		Start:      fields[3],
		End:        fields[4],
		Score:      fields[5],
		Strand:     fields[6],
		Frame:      fields[7],
		Attributes: fields[8],
	}, nil
}

// Interval returns the record coordinates as a 0-based half-open interval.
func (r *Record) Interval() (start, end int, err error) {
	start, err = strconv.Atoi(strings.TrimSpace(r.Start))
	if err != nil {
		return 0, 0, &ParseError{Segment: r.Start, Err: fmt.Errorf("invalid start: %w", err)}
	}
	end, err = strconv.Atoi(strings.TrimSpace(r.End))
	if err != nil {
		return 0, 0, &ParseError{Segment: r.End, Err: fmt.Errorf("invalid end: %w", err)}
	}
	return start - 1, end, nil
}

// String returns the string representation of a Record
func (r *Record) String() string {
	return fmt.Sprintf("%s:%s-%s:%s", r.Chrom, r.Start, r.End, r.Feature)
}
