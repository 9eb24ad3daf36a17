package gtf2bed

import log "github.com/sirupsen/logrus"

// Summary counts how the input lines of a conversion were handled.
type Summary struct {
	Lines          int
	Comments       int
	Short          int
	OtherFeature   int
	Filtered       int
	OutsideRegions int
	Written        int
}

// Fields returns the summary as logrus fields.
func (s *Summary) Fields() log.Fields {
	return log.Fields{
		"lines":          s.Lines,
		"comments":       s.Comments,
		"short":          s.Short,
		"otherFeature":   s.OtherFeature,
		"filtered":       s.Filtered,
		"outsideRegions": s.OutsideRegions,
		"written":        s.Written,
	}
}
