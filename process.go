// Package gtf2bed converts GTF annotation records of one feature type into BED intervals.
package gtf2bed

import (
	"time"

	"github.com/guigolab/gtf2bed/annotation"
	"github.com/guigolab/gtf2bed/config"
	"github.com/guigolab/gtf2bed/region"
	"github.com/guigolab/gtf2bed/utils"
	log "github.com/sirupsen/logrus"
)

// NewOptions builds conversion Options from cfg. Patterns are compiled and the
// regions file is loaded here, before any annotation line is read.
func NewOptions(cfg *config.Config) (*Options, error) {
	columns, err := cfg.BedColumns()
	if err != nil {
		return nil, err
	}
	include, exclude, err := cfg.Patterns()
	if err != nil {
		return nil, err
	}
	opts := &Options{
		Feature:   cfg.Feature,
		FilterKey: cfg.FilterKey,
		Include:   include,
		Exclude:   exclude,
		Columns:   columns,
		NameKey:   cfg.NameKey,
	}
	if cfg.Regions != "" {
		if opts.Regions, err = region.Load(cfg.Regions); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// Process converts the GTF file named in cfg and writes the BED output to cfg.Output.
func Process(cfg *config.Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := NewOptions(cfg)
	if err != nil {
		return nil, err
	}

	in, err := utils.NewInput(cfg.GTF)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	r, err := annotation.NewReader(in)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := utils.NewOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{
		"feature": opts.Feature,
		"columns": opts.Columns,
	})
	logger.Infof("Converting %s", cfg.GTF)
	start := time.Now()
	sum, err := Convert(r, out, opts)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return sum, err
	}
	logger.WithFields(sum.Fields()).Infof("Conversion done in %v", time.Since(start))
	return sum, nil
}
