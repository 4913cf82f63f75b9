package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/epmbands/bandstructure"
	"github.com/katalvlaran/epmbands/internal/config"
	"github.com/katalvlaran/epmbands/internal/logging"
	"github.com/katalvlaran/epmbands/material"
	"github.com/katalvlaran/epmbands/telemetry"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	log     *zap.Logger
	reg     *material.Registry
	prom    *prometheus.Registry
	metrics *telemetry.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "epm",
		Short:         "Empirical pseudopotential band structures and densities of states",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.finish()
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Bool("log-json", false, "log JSON lines instead of console text")
	pf.String("metrics-file", "", "write Prometheus metrics to this textfile after the run")
	pf.String("materials", "", "YAML table of extra or overriding materials")

	root.AddCommand(
		newBandsCmd(a),
		newAllCmd(a),
		newMeshBandsCmd(a),
		newDOSCmd(a),
		newMaterialsCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if a.cfg, err = config.Load(a.v, file); err != nil {
		return err
	}
	if a.log, err = logging.New(a.cfg.LogLevel, a.cfg.LogJSON); err != nil {
		return err
	}

	a.reg = material.Builtin()
	if a.cfg.Materials != "" {
		extra, err := material.LoadYAMLFile(a.cfg.Materials)
		if err != nil {
			return err
		}
		if a.reg, err = a.reg.Merge(extra...); err != nil {
			return err
		}
		a.log.Debug("materials merged", zap.String("file", a.cfg.Materials), zap.Int("count", len(extra)))
	}

	a.prom = prometheus.NewRegistry()
	a.metrics = telemetry.NewMetrics(a.prom)

	return nil
}

func (a *app) finish() error {
	defer func() { _ = a.log.Sync() }()
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := telemetry.WriteTextfile(a.cfg.MetricsFile, a.prom); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug("metrics written", zap.String("file", a.cfg.MetricsFile))

	return nil
}

func (a *app) runOptions() []bandstructure.Option {
	return []bandstructure.Option{
		bandstructure.WithLogger(a.log),
		bandstructure.WithMetrics(a.metrics),
	}
}

// addComputeFlags registers the flags shared by every command that
// diagonalizes Hamiltonians. Defaults repeat config.SetDefaults so that
// --help shows them.
func addComputeFlags(fs *pflag.FlagSet) {
	fs.StringP("material", "m", "Si", "material symbol (Si, Ge, GaAs, ...)")
	fs.IntP("bands", "b", 12, "number of bands to keep")
	fs.IntP("shells", "n", 10, "nearest-neighbour shells of the plane-wave basis")
	fs.Int("max-vectors", 0, "cap on the basis size, 0 for none")
	fs.IntP("nthreads", "j", 1, "worker goroutines")
	fs.Bool("spin-orbit", false, "include spin-orbit coupling")
	fs.String("solver", "lapack", "eigensolver: lapack or jacobi")
	fs.String("reference", "vbm", "energy zero: vbm or midgap")
}
