// Package config holds the converter settings and validates them before any
// annotation line is read.
package config

import (
	"fmt"
	"regexp"

	"github.com/guigolab/gtf2bed/bed"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Viper keys. They match the long CLI flag names.
const (
	KeyGTF      = "gtf"
	KeyOutput   = "output"
	KeyFeature  = "feature"
	KeyFilter   = "filter-key"
	KeyInclude  = "include-patterns"
	KeyExclude  = "exclude-patterns"
	KeyColumns  = "bed-columns"
	KeyNameKey  = "name-key"
	KeyRegions  = "regions"
	KeyLogLevel = "loglevel"
)

// DefaultFilterKey is the attribute used for filtering when none is given.
const DefaultFilterKey = "gene_type"

// Features lists the feature types accepted on the command line.
var Features = []string{"gene", "transcript", "exon"}

type Config struct {
	GTF, Output      string
	Feature          string
	FilterKey        string
	Include, Exclude []string
	Columns          string
	NameKey          string
	Regions          string
	LogLevel         string
}

func NewConfig() *Config {
	return &Config{
		Output:    "-",
		FilterKey: DefaultFilterKey,
		Columns:   bed.Simple.String(),
		LogLevel:  "warn",
	}
}

// SetDefaults registers the Config defaults on v.
func SetDefaults(v *viper.Viper) {
	d := NewConfig()
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyFilter, d.FilterKey)
	v.SetDefault(KeyColumns, d.Columns)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// FromViper reads a Config from v.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		GTF:       v.GetString(KeyGTF),
		Output:    v.GetString(KeyOutput),
		Feature:   v.GetString(KeyFeature),
		FilterKey: v.GetString(KeyFilter),
		Include:   patternList(v, KeyInclude),
		Exclude:   patternList(v, KeyExclude),
		Columns:   v.GetString(KeyColumns),
		NameKey:   v.GetString(KeyNameKey),
		Regions:   v.GetString(KeyRegions),
		LogLevel:  v.GetString(KeyLogLevel),
	}
}

// patternList reads a pattern sequence. A scalar string is a single pattern
// and is never split.
func patternList(v *viper.Viper, key string) []string {
	switch val := v.Get(key).(type) {
	case nil:
		return nil
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []interface{}:
		res := make([]string, 0, len(val))
		for _, e := range val {
			res = append(res, cast.ToString(e))
		}
		return res
	}
	return v.GetStringSlice(key)
}

// Load reads the YAML config file at path into v. An empty path is a no-op.
func Load(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// Validate checks the closed value sets and required fields.
func (c *Config) Validate() error {
	if c.GTF == "" {
		return &ValueError{Key: KeyGTF, Value: c.GTF, Allowed: []string{"<path>", "-"}}
	}
	if !contains(Features, c.Feature) {
		return &ValueError{Key: KeyFeature, Value: c.Feature, Allowed: Features}
	}
	if _, err := bed.ParseColumns(c.Columns); err != nil {
		return &ValueError{Key: KeyColumns, Value: c.Columns, Allowed: []string{bed.Simple.String(), bed.Detailed.String()}}
	}
	return nil
}

// BedColumns returns the parsed output layout.
func (c *Config) BedColumns() (bed.Columns, error) {
	return bed.ParseColumns(c.Columns)
}

// Patterns compiles the include and exclude patterns.
func (c *Config) Patterns() (include, exclude []*regexp.Regexp, err error) {
	if include, err = CompilePatterns(c.Include); err != nil {
		return nil, nil, err
	}
	if exclude, err = CompilePatterns(c.Exclude); err != nil {
		return nil, nil, err
	}
	return include, exclude, nil
}

// CompilePatterns compiles each pattern in order. The first invalid pattern
// is reported as a *PatternError.
func CompilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &PatternError{Pattern: p, Err: err}
		}
		res = append(res, re)
	}
	return res, nil
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
