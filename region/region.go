// Package region restricts output to records overlapping a set of genomic regions.
package region

import (
	"io"
	"os"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/bed"
	"github.com/dhconnelly/rtreego"
	log "github.com/sirupsen/logrus"
)

// Region is an indexed 0-based half-open interval.
type Region struct {
	location   *rtreego.Rect
	chrom      string
	start, end int
}

// Bounds returns the location of the region. It is used within the Rtree.
func (r *Region) Bounds() *rtreego.Rect {
	return r.location
}

// Chrom returns the chromosome of the region
func (r *Region) Chrom() string {
	return r.chrom
}

// Start returns the start position of the region
func (r *Region) Start() int {
	return r.start
}

// End returns the end position of the region
func (r *Region) End() int {
	return r.end
}

// NewRegion returns a new Region. Empty or inverted intervals are rejected.
func NewRegion(chrom string, start, end int) (*Region, error) {
	rect, err := newRect(start, end)
	if err != nil {
		return nil, err
	}
	return &Region{rect, chrom, start, end}, nil
}

func newRect(start, end int) (*rtreego.Rect, error) {
	return rtreego.NewRect(rtreego.Point{float64(start)}, []float64{float64(end - start)})
}

// Index is a map of per-chromosome Rtrees.
type Index map[string]*rtreego.Rtree

// Get returns the Rtree for the specified chromosome, or nil if not present.
func (idx Index) Get(chrom string) *rtreego.Rtree {
	return idx[chrom]
}

// Len returns the number of indexed chromosomes.
func (idx Index) Len() int {
	return len(idx)
}

// NewIndex builds an Index from regions.
func NewIndex(regions []*Region) Index {
	byChrom := make(map[string][]rtreego.Spatial)
	for _, r := range regions {
		byChrom[r.chrom] = append(byChrom[r.chrom], r)
	}
	idx := make(Index, len(byChrom))
	for chrom, rs := range byChrom {
		idx[chrom] = rtreego.NewTree(1, 25, 50, rs...)
	}
	return idx
}

// Query returns the regions on chrom overlapping [start, end).
func (idx Index) Query(chrom string, start, end int) []*Region {
	tree := idx.Get(chrom)
	if tree == nil {
		return nil
	}
	bb, err := newRect(start, end)
	if err != nil {
		log.WithFields(log.Fields{
			"chrom": chrom,
			"start": start,
			"end":   end,
		}).Debug("Empty query interval")
		return nil
	}
	var out []*Region
	for _, s := range tree.SearchIntersect(bb) {
		r := s.(*Region)
		if r.start < end && start < r.end {
			out = append(out, r)
		}
	}
	return out
}

// Overlaps reports whether [start, end) on chrom overlaps any indexed region.
func (idx Index) Overlaps(chrom string, start, end int) bool {
	return len(idx.Query(chrom, start, end)) > 0
}

// Read builds an Index from a BED3 stream. Zero-length regions are skipped.
func Read(r io.Reader) (Index, error) {
	br, err := bed.NewReader(r, 3)
	if err != nil {
		return nil, err
	}
	var regions []*Region
	sc := featio.NewScanner(br)
	for sc.Next() {
		f := sc.Feat().(*bed.Bed3)
		reg, err := NewRegion(f.Chrom, f.ChromStart, f.ChromEnd)
		if err != nil {
			log.WithFields(log.Fields{
				"chrom": f.Chrom,
				"start": f.ChromStart,
				"end":   f.ChromEnd,
			}).Warn("Skipping empty region")
			continue
		}
		regions = append(regions, reg)
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return NewIndex(regions), nil
}

// Load builds an Index from the BED3 file at path.
func Load(path string) (Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	idx, err := Read(f)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"file":        path,
		"chromosomes": idx.Len(),
	}).Info("Loaded regions")
	return idx, nil
}
