package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/epmbands/bandstructure"
	"github.com/katalvlaran/epmbands/export"
	"github.com/katalvlaran/epmbands/kpath"
)

func newBandsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Compute the band structure of one material along one path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := a.cfg.Request("", "")
			if err != nil {
				return err
			}
			arch, err := a.openArchive()
			if err != nil {
				return err
			}
			if arch != nil {
				defer func() { _ = arch.Close() }()
			}

			return a.bands(cmd.Context(), cmd.OutOrStdout(), req, arch)
		},
	}
	fs := cmd.Flags()
	addComputeFlags(fs)
	addPathFlags(cmd)

	return cmd
}

func newAllCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Compute every registered material along every default path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			arch, err := a.openArchive()
			if err != nil {
				return err
			}
			if arch != nil {
				defer func() { _ = arch.Close() }()
			}

			var errs []error
			for _, symbol := range a.reg.Symbols() {
				for _, path := range kpath.DefaultPaths() {
					if err := cmd.Context().Err(); err != nil {
						return err
					}
					req, err := a.cfg.Request(symbol, path)
					if err != nil {
						return err
					}
					if err = a.bands(cmd.Context(), cmd.OutOrStdout(), req, arch); err != nil {
						a.log.Error("run failed", zap.String("material", symbol), zap.String("path", path), zap.Error(err))
						errs = append(errs, err)
					}
				}
			}

			return errors.Join(errs...)
		},
	}
	fs := cmd.Flags()
	fs.IntP("points", "N", 80, "points per path segment, ends included")
	fs.IntP("bands", "b", 12, "number of bands to keep")
	fs.IntP("shells", "n", 10, "nearest-neighbour shells of the plane-wave basis")
	fs.IntP("nthreads", "j", 1, "worker goroutines")
	fs.Bool("spin-orbit", false, "include spin-orbit coupling")
	fs.String("solver", "lapack", "eigensolver: lapack or jacobi")
	fs.StringP("result-dir", "r", "EPP_RESULTS", "directory for band files")
	fs.Bool("with-kpoints", false, "prefix each band row with kx ky kz")
	fs.Bool("kpoints-file", false, "also write the sampled k-points to <material>_<path>_kpoints.txt")
	fs.String("archive", "", "also store runs in this SQLite database")

	return cmd
}

func addPathFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringP("path", "p", "LGXUG", "high-symmetry path, e.g. LGXUG")
	fs.IntP("points", "N", 80, "points per path segment, ends included")
	fs.StringP("result-dir", "r", "EPP_RESULTS", "directory for band files")
	fs.Bool("with-kpoints", false, "prefix each band row with kx ky kz")
	fs.Bool("kpoints-file", false, "also write the sampled k-points to <material>_<path>_kpoints.txt")
	fs.String("archive", "", "also store runs in this SQLite database")
}

// bands runs req, writes its band file and, when arch is set, archives it.
// A malformed result table is logged and skipped, not fatal.
func (a *app) bands(ctx context.Context, out io.Writer, req bandstructure.Request, arch *export.Archive) error {
	start := time.Now()
	rep, err := bandstructure.Run(ctx, a.reg, req, a.runOptions()...)
	if err != nil {
		return err
	}
	path := rep.Path.String()
	a.log.Info("band structure computed",
		zap.String("material", rep.Material.Symbol),
		zap.String("path", path),
		zap.Int("kpoints", rep.Result.Len()),
		zap.Int("basis", rep.Basis.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	file, err := export.WriteBandsFile(a.cfg.ResultDir, path, rep.Result, a.cfg.WithKPoints)
	switch {
	case errors.Is(err, export.ErrLengthMismatch), errors.Is(err, export.ErrNoData):
		a.log.Warn("band export skipped", zap.String("material", rep.Material.Symbol), zap.Error(err))
	case err != nil:
		return err
	}
	if a.cfg.KPointsFile {
		kfile, err := export.WriteKPointsFile(a.cfg.ResultDir, rep.Result.Material, path, rep.Result.KPoints)
		if err != nil {
			return err
		}
		a.log.Debug("k-points written", zap.String("file", kfile))
	}

	if arch != nil {
		id, err := arch.SaveBands(ctx, export.RunInfo{
			Path:      path,
			Shells:    req.Shells,
			SpinOrbit: req.SpinOrbit,
			Gap:       rep.Gap.Value,
		}, rep.Result)
		if err != nil {
			return fmt.Errorf("archive: %w", err)
		}
		a.log.Debug("run archived", zap.Int64("id", id), zap.String("db", arch.Path()))
	}

	kind := "indirect"
	if rep.Gap.Direct(rep.Result) {
		kind = "direct"
	}
	if rep.Gap.Metallic {
		kind = "metallic"
	}
	_, err = fmt.Fprintf(out, "%s %s: gap %.4f eV (%s) -> %s\n", rep.Material.Symbol, path, rep.Gap.Value, kind, file)

	return err
}

func (a *app) openArchive() (*export.Archive, error) {
	if a.cfg.Archive == "" {
		return nil, nil
	}

	return export.OpenArchive(a.cfg.Archive)
}
