package gtf2bed

import (
	"fmt"
	"io"
	"regexp"

	"github.com/guigolab/gtf2bed/annotation"
	"github.com/guigolab/gtf2bed/bed"
	"github.com/guigolab/gtf2bed/region"
	log "github.com/sirupsen/logrus"
)

// NA is written as type when the filter attribute is missing.
const NA = "NA"

// Options are the fixed parameters of a conversion.
type Options struct {
	// Feature is compared verbatim against the GTF feature column.
	Feature string
	// FilterKey is the attribute matched by Include and Exclude and written
	// as type in detailed mode. Empty disables filtering.
	FilterKey string
	// Include keeps a record when any pattern matches the filter value.
	Include []*regexp.Regexp
	// Exclude drops a record when any pattern matches the filter value.
	Exclude []*regexp.Regexp
	Columns bed.Columns
	// NameKey overrides the feature specific name attribute.
	NameKey string
	// Regions, when not nil, drops records not overlapping any region.
	Regions region.Index
}

// Convert reads GTF lines from r and writes one BED record to w for every
// retained line, in input order. Output is flushed before Convert returns,
// including when it stops on a *annotation.ParseError.
func Convert(r io.Reader, w io.Writer, opts *Options) (*Summary, error) {
	sc := annotation.NewScanner(r)
	bw := bed.NewWriter(w, opts.Columns)
	sum := &Summary{}

	err := convert(sc, bw, opts, sum)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	sum.Written = bw.Count()
	return sum, err
}

func convert(sc *annotation.Scanner, bw *bed.Writer, opts *Options, sum *Summary) error {
	for sc.Next() {
		sum.Lines++
		line := sc.Text()
		if annotation.IsComment(line) {
			log.WithField("line", sc.Line()).Debug("Skipping comment")
			sum.Comments++
			continue
		}
		rec, err := annotation.Parse(line)
		if err != nil {
			log.WithField("line", sc.Line()).Debug("Skipping short line")
			sum.Short++
			continue
		}
		if rec.Feature != opts.Feature {
			log.WithFields(log.Fields{
				"line":    sc.Line(),
				"feature": rec.Feature,
			}).Debug("Skipping other feature")
			sum.OtherFeature++
			continue
		}
		attrs, err := annotation.ParseAttributes(rec.Attributes)
		if err != nil {
			return withLine(err, sc.Line())
		}
		if !opts.keep(attrs) {
			log.WithFields(log.Fields{
				"line":  sc.Line(),
				"value": attrs.Value(opts.FilterKey, ""),
			}).Debug("Filtered")
			sum.Filtered++
			continue
		}
		start, end, err := rec.Interval()
		if err != nil {
			return withLine(err, sc.Line())
		}
		if opts.Regions != nil && !opts.Regions.Overlaps(rec.Chrom, start, end) {
			log.WithField("line", sc.Line()).Debug("Outside regions")
			sum.OutsideRegions++
			continue
		}
		err = bw.Write(&bed.Record{
			Chrom:  rec.Chrom,
			Start:  start,
			End:    end,
			Strand: rec.Strand,
			Name:   opts.name(attrs),
			Type:   opts.typeLabel(attrs),
		})
		if err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("reading annotation: %w", err)
	}
	return nil
}

func withLine(err error, line int) error {
	if perr, ok := err.(*annotation.ParseError); ok {
		perr.Line = line
	}
	return err
}

// keep applies the include then exclude patterns to the filter value. A
// missing value matches no pattern.
func (o *Options) keep(attrs annotation.Attributes) bool {
	if o.FilterKey == "" {
		return true
	}
	value, ok := attrs.Get(o.FilterKey)
	if len(o.Include) > 0 && !(ok && matchAny(o.Include, value)) {
		return false
	}
	if len(o.Exclude) > 0 && ok && matchAny(o.Exclude, value) {
		return false
	}
	return true
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func (o *Options) name(attrs annotation.Attributes) string {
	if o.NameKey != "" {
		return attrs.Value(o.NameKey, o.Feature)
	}
	switch o.Feature {
	case "gene":
		return attrs.Value("gene_name", "gene")
	case "transcript":
		return attrs.Value("transcript_name", "transcript")
	case "exon":
		return fmt.Sprintf("%s;Exon%s", attrs.Value("gene_name", "gene"), attrs.Value("exon_number", "exon"))
	}
	return o.Feature
}

func (o *Options) typeLabel(attrs annotation.Attributes) string {
	if o.FilterKey == "" {
		return NA
	}
	return attrs.Value(o.FilterKey, NA)
}
