package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timeuse/estimate"
	"github.com/katalvlaran/timeuse/model"
	"github.com/katalvlaran/timeuse/solve"
)

// writeFile drops content into a fresh temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadConfig_EmptyPathOverridesNothing(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	p := cfg.apply(model.DefaultParams(model.SharedDisutility))
	assert.Equal(t, model.DefaultParams(model.SharedDisutility), p)
}

func TestLoadConfig_ParsesOverrides(t *testing.T) {
	path := writeFile(t, "params.yaml", `
variant: separate
alpha: 0.75
sigma: 0.5
wM: 1.1
wF_grid: [0.9, 1.0, 1.1]
beta1_target: -0.2
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "separate", cfg.Variant)
	require.NotNil(t, cfg.Alpha)
	assert.Equal(t, 0.75, *cfg.Alpha)
	require.NotNil(t, cfg.Sigma)
	assert.Equal(t, 0.5, *cfg.Sigma)
	require.NotNil(t, cfg.WM)
	assert.Equal(t, 1.1, *cfg.WM)
	assert.Equal(t, []float64{0.9, 1.0, 1.1}, cfg.WFGrid)
	require.NotNil(t, cfg.Beta1Target)
	assert.Equal(t, -0.2, *cfg.Beta1Target)

	assert.Nil(t, cfg.Rho, "untouched keys stay nil")
	assert.Nil(t, cfg.WF, "untouched keys stay nil")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_RejectsMalformedYAML(t *testing.T) {
	path := writeFile(t, "broken.yaml", "alpha: [not a number\n")

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestConfigApply_OverlaysDefaultsOnly(t *testing.T) {
	alpha := 0.9
	grid := []float64{0.5, 1.5}
	cfg := Config{Alpha: &alpha, WFGrid: grid}

	p := cfg.apply(model.DefaultParams(model.SharedDisutility))

	assert.Equal(t, 0.9, p.Alpha, "file value wins")
	assert.Equal(t, model.DefaultRho, p.Rho, "absent keys keep defaults")
	assert.Equal(t, []float64{0.5, 1.5}, p.WFGrid)

	grid[0] = 99
	assert.Equal(t, 0.5, p.WFGrid[0], "the grid is copied, no aliasing")
}

func TestParseVariant(t *testing.T) {
	v, err := parseVariant("shared")
	require.NoError(t, err)
	assert.Equal(t, model.SharedDisutility, v)

	v, err = parseVariant("separate")
	require.NoError(t, err)
	assert.Equal(t, model.SeparateDisutility, v)

	_, err = parseVariant("both")
	assert.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	cases := map[string]solve.Method{
		"grid":        solve.GridSearch,
		"nelder-mead": solve.NelderMead,
		"bfgs":        solve.BFGS,
		"lbfgs":       solve.LBFGS,
	}
	for name, want := range cases {
		got, err := parseMethod(name)
		require.NoError(t, err, "method %q", name)
		assert.Equal(t, want, got, "method %q", name)
	}

	_, err := parseMethod("sqp")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := parseMode("continuous")
	require.NoError(t, err)
	assert.Equal(t, estimate.Continuous, m)

	m, err = parseMode("discrete")
	require.NoError(t, err)
	assert.Equal(t, estimate.Discrete, m)

	_, err = parseMode("hybrid")
	assert.Error(t, err)
}

func TestParseFree(t *testing.T) {
	f, err := parseFree("alpha+sigma")
	require.NoError(t, err)
	assert.Equal(t, estimate.FreeAlphaSigma, f)

	f, err = parseFree("sigma")
	require.NoError(t, err)
	assert.Equal(t, estimate.FreeSigma, f)

	_, err = parseFree("alpha")
	assert.Error(t, err)
}
