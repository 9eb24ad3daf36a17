package gtf2bed

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/guigolab/gtf2bed/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGzip(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "annotation.gtf.gz")
	writeGzip(t, in, "##provider: test\n"+fixture)

	cfg := config.NewConfig()
	cfg.GTF = in
	cfg.Output = filepath.Join(dir, "genes.bed")
	cfg.Feature = "gene"
	cfg.Columns = "detailed"
	cfg.Include = []string{".*RNA$"}
	cfg.Exclude = []string{"pseudo.*"}

	sum, err := Process(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Written)

	b, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, "chr1\t299\t400\t+\tGENE2\tlincRNA\n", string(b))
}

func TestProcessRegions(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "annotation.gtf")
	require.NoError(t, os.WriteFile(in, []byte(fixture), 0o644))
	regions := filepath.Join(dir, "regions.bed")
	require.NoError(t, os.WriteFile(regions, []byte("chr1\t0\t120\n"), 0o644))

	cfg := config.NewConfig()
	cfg.GTF = in
	cfg.Output = filepath.Join(dir, "exons.bed")
	cfg.Feature = "exon"
	cfg.Regions = regions

	_, err := Process(cfg)
	require.NoError(t, err)
	b, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, "chr1\t99\t150\tGENE1;Exon1\n", string(b))
}

func TestProcessFailsBeforeReading(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.bed")

	cfg := config.NewConfig()
	cfg.GTF = filepath.Join(dir, "missing.gtf")
	cfg.Output = out
	cfg.Feature = "gene"
	cfg.Include = []string{"(bad"}

	_, err := Process(cfg)
	var perr *config.PatternError
	require.True(t, errors.As(err, &perr), "got %v", err)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output must not be created")

	cfg.Include = nil
	cfg.Feature = "CDS"
	_, err = Process(cfg)
	var verr *config.ValueError
	assert.True(t, errors.As(err, &verr))

	cfg.Feature = "gene"
	_, err = Process(cfg)
	assert.True(t, os.IsNotExist(err), "got %v", err)
}
