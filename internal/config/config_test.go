package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epmbands/bandstructure"
	"github.com/katalvlaran/epmbands/diag"
	"github.com/katalvlaran/epmbands/internal/config"
)

func TestDefaults(t *testing.T) {
	c, err := config.Load(config.New(), "")
	require.NoError(t, err)
	require.Equal(t, "Si", c.Material)
	require.Equal(t, "LGXUG", c.Path)
	require.Equal(t, 80, c.Points)
	require.Equal(t, 12, c.Bands)
	require.Equal(t, 10, c.Shells)
	require.Equal(t, 1, c.Workers)
	require.Equal(t, "EPP_RESULTS", c.ResultDir)
	require.Equal(t, 250, c.Energies)
	require.Equal(t, diag.NameLAPACK, c.Solver)
	require.False(t, c.KPointsFile)
}

func TestPrecedence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "epm.yaml")
	require.NoError(t, os.WriteFile(file, []byte("material: Ge\nbands: 16\nnthreads: 2\n"), 0o600))
	t.Setenv("EPM_BANDS", "20")
	t.Setenv("EPM_KPOINTS_FILE", "true")

	v := config.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntP("nthreads", "j", 1, "")
	fs.String("result-dir", "EPP_RESULTS", "")
	fs.Bool("unrelated", false, "")
	require.NoError(t, config.BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"-j", "6", "--result-dir", "out"}))

	c, err := config.Load(v, file)
	require.NoError(t, err)
	require.Equal(t, "Ge", c.Material) // file over default
	require.Equal(t, 20, c.Bands)      // env over file
	require.Equal(t, 6, c.Workers)     // flag over file
	require.Equal(t, "out", c.ResultDir)
	require.True(t, c.KPointsFile)
}

func TestValidate(t *testing.T) {
	base, err := config.Load(config.New(), "")
	require.NoError(t, err)

	bad := []func(*config.Config){
		func(c *config.Config) { c.Points = 1 },
		func(c *config.Config) { c.Bands = 0 },
		func(c *config.Config) { c.Workers = 0 },
		func(c *config.Config) { c.Energies = 0 },
		func(c *config.Config) { c.MaxVectors = -1 },
	}
	for i, mutate := range bad {
		c := base
		mutate(&c)
		require.ErrorIs(t, c.Validate(), config.ErrInvalid, "case %d", i)
	}

	c := base
	c.Solver = "qr"
	require.ErrorIs(t, c.Validate(), diag.ErrUnknownSolver)

	c = base
	c.Reference = "fermi"
	require.ErrorIs(t, c.Validate(), bandstructure.ErrUnknownReference)

	c = base
	c.Path = "LQ"
	require.Error(t, c.Validate())
}

func TestRequest(t *testing.T) {
	c, err := config.Load(config.New(), "")
	require.NoError(t, err)
	c.Reference = "midgap"

	req, err := c.Request("", "")
	require.NoError(t, err)
	require.Equal(t, "Si", req.Material)
	require.Equal(t, "LGXUG", req.Path)
	require.Equal(t, bandstructure.MidGap, req.Reference)
	require.Equal(t, 80, req.PointsPerSegment)

	req, err = c.Request("GaAs", "WGX")
	require.NoError(t, err)
	require.Equal(t, "GaAs", req.Material)
	require.Equal(t, "WGX", req.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
}
