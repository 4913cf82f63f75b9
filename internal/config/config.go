// Package config loads epm settings from defaults, an optional YAML file,
// EPM_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/epmbands/bandstructure"
	"github.com/katalvlaran/epmbands/basis"
	"github.com/katalvlaran/epmbands/diag"
	"github.com/katalvlaran/epmbands/kpath"
)

// EnvPrefix prefixes every environment override, e.g. EPM_MATERIAL.
const EnvPrefix = "EPM"

// Keys shared by the config file, the environment and the flags.
const (
	KeyMaterial    = "material"
	KeyPath        = "path"
	KeyPoints      = "points"
	KeyBands       = "bands"
	KeyShells      = "shells"
	KeyMaxVectors  = "max_vectors"
	KeyWorkers     = "nthreads"
	KeyResultDir   = "result_dir"
	KeyEnergies    = "energies"
	KeySpinOrbit   = "spin_orbit"
	KeySolver      = "solver"
	KeyReference   = "reference"
	KeyWithKPoints = "with_kpoints"
	KeyKPointsFile = "kpoints_file"
	KeyArchive     = "archive"
	KeyMaterials   = "materials"
	KeyLogLevel    = "log_level"
	KeyLogJSON     = "log_json"
	KeyMetricsFile = "metrics_file"
)

// ErrInvalid reports a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the merged view of every source.
type Config struct {
	Material    string `mapstructure:"material"`
	Path        string `mapstructure:"path"`
	Points      int    `mapstructure:"points"`
	Bands       int    `mapstructure:"bands"`
	Shells      int    `mapstructure:"shells"`
	MaxVectors  int    `mapstructure:"max_vectors"`
	Workers     int    `mapstructure:"nthreads"`
	ResultDir   string `mapstructure:"result_dir"`
	Energies    int    `mapstructure:"energies"`
	SpinOrbit   bool   `mapstructure:"spin_orbit"`
	Solver      string `mapstructure:"solver"`
	Reference   string `mapstructure:"reference"`
	WithKPoints bool   `mapstructure:"with_kpoints"`
	KPointsFile bool   `mapstructure:"kpoints_file"`
	Archive     string `mapstructure:"archive"`
	Materials   string `mapstructure:"materials"`
	LogLevel    string `mapstructure:"log_level"`
	LogJSON     bool   `mapstructure:"log_json"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// New returns a viper instance carrying the defaults and reading EPM_*
// variables.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults installs the values of the original command line program.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaterial, "Si")
	v.SetDefault(KeyPath, "LGXUG")
	v.SetDefault(KeyPoints, 80)
	v.SetDefault(KeyBands, 12)
	v.SetDefault(KeyShells, 10)
	v.SetDefault(KeyMaxVectors, 0)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyResultDir, "EPP_RESULTS")
	v.SetDefault(KeyEnergies, 250)
	v.SetDefault(KeySpinOrbit, false)
	v.SetDefault(KeySolver, diag.NameLAPACK)
	v.SetDefault(KeyReference, "vbm")
	v.SetDefault(KeyWithKPoints, false)
	v.SetDefault(KeyKPointsFile, false)
	v.SetDefault(KeyArchive, "")
	v.SetDefault(KeyMaterials, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyMetricsFile, "")
}

var keys = map[string]bool{
	KeyMaterial: true, KeyPath: true, KeyPoints: true, KeyBands: true,
	KeyShells: true, KeyMaxVectors: true, KeyWorkers: true, KeyResultDir: true,
	KeyEnergies: true, KeySpinOrbit: true, KeySolver: true, KeyReference: true,
	KeyWithKPoints: true, KeyKPointsFile: true, KeyArchive: true, KeyMaterials: true, KeyLogLevel: true,
	KeyLogJSON: true, KeyMetricsFile: true,
}

// BindFlags binds every flag of fs whose name, with '-' read as '_', is a
// known key. Other flags are left alone.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err != nil || !keys[key] {
			return
		}
		err = v.BindPFlag(key, f)
	})

	return err
}

// Load reads file when non-empty and decodes the merged settings.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return c, c.Validate()
}

// Validate checks the numeric settings and the names that have a closed set
// of values. Material symbols are checked against the registry later.
func (c Config) Validate() error {
	switch {
	case c.Points < 2:
		return fmt.Errorf("points = %d, want ≥ 2: %w", c.Points, ErrInvalid)
	case c.Bands < 1:
		return fmt.Errorf("bands = %d, want ≥ 1: %w", c.Bands, ErrInvalid)
	case c.Shells < 1:
		return fmt.Errorf("shells = %d, want ≥ 1: %w", c.Shells, ErrInvalid)
	case c.MaxVectors < 0:
		return fmt.Errorf("max_vectors = %d, want ≥ 0: %w", c.MaxVectors, ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("nthreads = %d, want ≥ 1: %w", c.Workers, ErrInvalid)
	case c.Energies < 1:
		return fmt.Errorf("energies = %d, want ≥ 1: %w", c.Energies, ErrInvalid)
	}
	if _, err := diag.ByName(c.Solver); err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	if _, err := bandstructure.ParseReference(c.Reference); err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	if _, err := kpath.ParseLabels(c.Path); err != nil {
		return fmt.Errorf("path: %w", err)
	}

	return nil
}

// Request converts c into a band-structure request for material and path,
// which override c.Material and c.Path when non-empty.
func (c Config) Request(material, path string) (bandstructure.Request, error) {
	ref, err := bandstructure.ParseReference(c.Reference)
	if err != nil {
		return bandstructure.Request{}, err
	}
	if material == "" {
		material = c.Material
	}
	if path == "" {
		path = c.Path
	}

	return bandstructure.Request{
		Material:         material,
		Path:             path,
		PointsPerSegment: c.Points,
		Bands:            c.Bands,
		Shells:           c.Shells,
		MaxVectors:       c.MaxVectors,
		Workers:          c.Workers,
		Truncation:       basis.CompleteShell,
		SpinOrbit:        c.SpinOrbit,
		Solver:           c.Solver,
		Reference:        ref,
	}, nil
}
