// Package bed writes annotation intervals in BED format.
package bed

import (
	"strconv"
	"strings"
)

// Record is a BED interval with 0-based half-open coordinates.
type Record struct {
	Chrom      string
	Start, End int
	Strand     string
	Name       string
	Type       string
}

// Fields returns the record columns for the given layout.
func (r *Record) Fields(c Columns) []string {
	start, end := strconv.Itoa(r.Start), strconv.Itoa(r.End)
	if c == Detailed {
		return []string{r.Chrom, start, end, r.Strand, r.Name, r.Type}
	}
	return []string{r.Chrom, start, end, r.Name}
}

// Format returns the tab separated record for the given layout, without a line terminator.
func (r *Record) Format(c Columns) string {
	return strings.Join(r.Fields(c), "\t")
}
