package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/guigolab/gtf2bed"
	"github.com/guigolab/gtf2bed/config"
	"github.com/guigolab/gtf2bed/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func run(v *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfgFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return
		}
		if err = config.Load(v, cfgFile); err != nil {
			return
		}
		cfg := config.FromViper(v)

		// Set loglevel
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return
		}
		log.SetLevel(level)

		logger := log.WithFields(log.Fields{
			"version":   version,
			"commit":    commit,
			"buildTime": date,
		})
		logger.Infof("Running %s", cmd.Use)
		if v.ConfigFileUsed() != "" {
			log.Infof("Using config file %s", v.ConfigFileUsed())
		}

		_, err = gtf2bed.Process(cfg)
		return
	}
}

var boundKeys = []string{
	config.KeyGTF, config.KeyOutput, config.KeyFeature, config.KeyFilter,
	config.KeyInclude, config.KeyExclude, config.KeyColumns, config.KeyNameKey,
	config.KeyRegions, config.KeyLogLevel,
}

// bindFlags binds each key to the flag of the same name.
func bindFlags(v *viper.Viper, f *pflag.FlagSet, keys []string) error {
	for _, key := range keys {
		if err := v.BindPFlag(key, f.Lookup(key)); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	return nil
}

func setFlags(c *cobra.Command, v *viper.Viper) error {
	d := config.NewConfig()
	f := c.PersistentFlags()
	f.StringP(config.KeyGTF, "i", "", "input GTF file, '-' for stdin (required)")
	f.StringP(config.KeyOutput, "o", d.Output, "output BED file")
	f.StringP(config.KeyFeature, "f", "", fmt.Sprintf("feature type to extract (%s)", strings.Join(config.Features, ", ")))
	f.String(config.KeyFilter, d.FilterKey, "attribute to filter on (e.g. gene_type, transcript_type)")
	f.StringArray(config.KeyInclude, nil, "regular expressions the filter attribute must match")
	f.StringArray(config.KeyExclude, nil, "regular expressions the filter attribute must not match")
	f.String(config.KeyColumns, d.Columns, "BED layout: simple (4 columns) or detailed (6 columns)")
	f.String(config.KeyNameKey, "", "attribute to use for the name column (e.g. gene_id, hgnc_id)")
	f.String(config.KeyRegions, "", "BED3 file restricting output to overlapping records")
	f.String(config.KeyLogLevel, d.LogLevel, "logging level")
	f.String("config", "", "YAML config file")

	if err := bindFlags(v, f, boundKeys); err != nil {
		return err
	}
	config.SetDefaults(v)

	c.SetVersionTemplate(`{{with .Name}}{{printf "== %s ==\n" .}}{{end}}{{printf "%s\n" .Version}}`)
	return nil
}

func buildVersion(version, commit, date string) string {
	var result = fmt.Sprintf("version: %s", version)
	if commit != "" {
		result = fmt.Sprintf("%s\ncommit: %s", result, commit)
	}
	if date != "" {
		result = fmt.Sprintf("%s\nbuilt at: %s", result, date)
	}
	return result
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var rootCmd = &cobra.Command{
		Use:          "gtf2bed",
		Short:        "GTF to BED conversion",
		Long:         "gtf2bed - extract one feature type from a GTF annotation into BED intervals",
		RunE:         run(v),
		Version:      buildVersion(version, commit, date),
		SilenceUsage: true,
	}
	utils.Check(setFlags(rootCmd, v))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
