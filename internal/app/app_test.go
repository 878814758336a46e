package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genome-annotator/internal/config"
)

const sampleExport = `# This data file generated by a genotyping platform.
# rsid	chromosome	position	genotype
rs1801133	1	11856378	CT
rs429358	19	45411941	TC
rs7412	19	45412079	CC
rs334	11	5248232	AA
rs1815739	11	66328095	TT
rs8192678	4	89011240	AG
rs4253778	22	46627603	GG
rs4988235	2	136608646	--
rs4244285	10	96541616	AA
rs12248560	10	96521657	CC
rs1229984	4	100239319	GG
rs671	12	112241766	AG
`

func newTestApp(t *testing.T, env map[string]string) *App {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	for k, v := range env {
		t.Setenv(k, v)
	}

	manager, err := config.NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Validate())

	a, err := New(manager)
	require.NoError(t, err)
	return a
}

func writeSampleExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genome.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0644))
	return path
}

func TestAppRun(t *testing.T) {
	genomePath := writeSampleExport(t)
	reportDir := t.TempDir()

	a := newTestApp(t, map[string]string{
		"ANNOTATOR_GENOME_PATH":   genomePath,
		"ANNOTATOR_REPORT_DIR":    reportDir,
		"ANNOTATOR_LOGGING_LEVEL": "warn",
	})

	path, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, reportDir))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(content)

	assert.Contains(t, out, "# Genome Annotation Report")
	assert.Contains(t, out, "## Cardiovascular")
	assert.Contains(t, out, "## Fitness")
	assert.Contains(t, out, "## Summary")

	// rs1801133 CT maps to a moderate finding.
	assert.Contains(t, out, "| rs1801133 | MTHFR C677T | CT | moderate |")
	// rs7903146 is not in the export at all.
	assert.Contains(t, out, "| rs7903146 | TCF7L2 | -- | not-available |")
	// rs4988235 is present but a no-call.
	assert.Contains(t, out, "| rs4988235 | MCM6/LCT | -- | not-available |")
	// APOE resolves from rs429358 TC + rs7412 CC.
	assert.Contains(t, out, "**APOE genotype**")
	// Two CYP2C19*2 copies make a poor metabolizer regardless of *17.
	assert.Contains(t, out, "**CYP2C19 metabolizer status** (poor metabolizer): risk")
	// One deficient ALDH2 copy reduces tolerance.
	assert.Contains(t, out, "**Alcohol tolerance** (intolerant): moderate")
}

func TestAppRunJSONFormat(t *testing.T) {
	genomePath := writeSampleExport(t)
	reportDir := t.TempDir()

	a := newTestApp(t, map[string]string{
		"ANNOTATOR_GENOME_PATH":   genomePath,
		"ANNOTATOR_REPORT_DIR":    reportDir,
		"ANNOTATOR_REPORT_FORMAT": "json",
		"ANNOTATOR_LOGGING_LEVEL": "warn",
	})

	path, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"run_id"`)
	assert.Contains(t, string(content), `"categories"`)
}

func TestAppRunMissingGenome(t *testing.T) {
	a := newTestApp(t, map[string]string{
		"ANNOTATOR_GENOME_PATH":   filepath.Join(t.TempDir(), "missing.txt"),
		"ANNOTATOR_REPORT_DIR":    t.TempDir(),
		"ANNOTATOR_LOGGING_LEVEL": "warn",
	})

	_, err := a.Run(context.Background())
	assert.Error(t, err)
}

func TestAppCategorySelection(t *testing.T) {
	genomePath := writeSampleExport(t)
	reportDir := t.TempDir()

	a := newTestApp(t, map[string]string{
		"ANNOTATOR_GENOME_PATH":   genomePath,
		"ANNOTATOR_REPORT_DIR":    reportDir,
		"ANNOTATOR_LOGGING_LEVEL": "warn",
	})
	a.cfg.Analysis.Categories = []string{"neurology", "no_such_category"}

	path, err := a.Run(context.Background())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(content)

	assert.Contains(t, out, "## Neurology")
	assert.NotContains(t, out, "## Cardiovascular")
}
