package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/epmbands/bandstructure"
	"github.com/katalvlaran/epmbands/bzmesh"
	"github.com/katalvlaran/epmbands/export"
	"github.com/katalvlaran/epmbands/meshio"
)

func newMeshBandsCmd(a *app) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "mesh-bands",
		Short: "Compute bands at the nodes of a Brillouin-zone mesh and store them as band_i fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := meshio.ReadFile(in)
			if err != nil {
				return err
			}
			req, err := a.cfg.Request("", "")
			if err != nil {
				return err
			}
			start := time.Now()
			rep, err := bandstructure.RunKPoints(cmd.Context(), a.reg, req, m.Nodes(), a.runOptions()...)
			if err != nil {
				return err
			}
			if err = m.AttachBands(rep.Result.Energies); err != nil {
				return err
			}
			if out == "" {
				out = stem(in) + "_bands.msh"
			}
			if err = meshio.WriteFile(out, m); err != nil {
				return err
			}
			a.log.Info("mesh bands written",
				zap.String("material", rep.Material.Symbol),
				zap.Int("nodes", m.NodeCount()),
				zap.Int("bands", rep.Result.Bands()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("file", out),
			)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d nodes x %d bands -> %s\n",
				rep.Material.Symbol, m.NodeCount(), rep.Result.Bands(), out)

			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&in, "mesh-file", "f", "bz.msh", "Gmsh file with the Brillouin-zone mesh")
	fs.StringVarP(&out, "output", "o", "", "output mesh file (default <mesh>_bands.msh)")
	addComputeFlags(fs)

	return cmd
}

func newDOSCmd(a *app) *cobra.Command {
	var (
		in, out string
		raw     bool
		runID   int64
	)
	cmd := &cobra.Command{
		Use:   "dos",
		Short: "Compute the density of states of every band_i field of a mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := meshio.ReadFile(in)
			if err != nil {
				return err
			}
			mat, err := a.reg.Lookup(a.cfg.Material)
			if err != nil {
				return err
			}
			if !raw {
				m.Scale(mat.ReciprocalUnit())
			}
			a.log.Info("mesh loaded",
				zap.String("file", in),
				zap.Int("nodes", m.NodeCount()),
				zap.Int("tetrahedra", m.TetraCount()),
				zap.Float64("volume", m.Volume()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Mesh volume: %g\n", m.Volume())

			bands := m.BandCount()
			if a.cfg.Bands < bands {
				bands = a.cfg.Bands
			}
			if bands == 0 {
				return fmt.Errorf("%s: %w", in, bzmesh.ErrMissingField)
			}
			opts := []bzmesh.Option{
				bzmesh.WithBins(a.cfg.Energies),
				bzmesh.WithWorkers(a.cfg.Workers),
				bzmesh.WithLogger(a.log),
				bzmesh.WithMetrics(a.metrics),
			}
			hists := make([]*bzmesh.Histogram, 0, bands)
			for b := 0; b < bands; b++ {
				h, err := bzmesh.ComputeDOS(m, b, opts...)
				if err != nil {
					return err
				}
				a.log.Debug("band dos",
					zap.Int("band", b),
					zap.Int64s("cases", h.Cases[:]),
					zap.Float64("integral", h.Integral()),
				)
				hists = append(hists, h)
			}

			if a.cfg.Archive != "" {
				id, err := a.archiveDOS(cmd.Context(), runID, export.RunInfo{
					Material: mat.Symbol,
					Path:     "mesh:" + stem(in),
					KPoints:  m.NodeCount(),
					Bands:    bands,
				}, hists)
				if err != nil {
					return fmt.Errorf("archive: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "DOS archived as run %d\n", id)
			}

			if out == "" {
				out = "DOS_" + stem(in) + ".csv"
			}
			err = export.WriteDOSCSV(out, hists)
			if errors.Is(err, export.ErrLengthMismatch) {
				a.log.Warn("dos export skipped", zap.String("file", out), zap.Error(err))

				return nil
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "DOS of %d bands -> %s\n", bands, out)

			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&in, "mesh-file", "f", "bz_bands.msh", "Gmsh file with the mesh and band_i fields")
	fs.StringVarP(&out, "output", "o", "", "CSV output (default DOS_<mesh>.csv)")
	fs.BoolVar(&raw, "raw", false, "keep mesh coordinates as read instead of scaling by 2π/a")
	fs.StringP("material", "m", "Si", "material whose lattice constant scales the mesh")
	fs.IntP("energies", "e", 250, "energy bins per band")
	fs.IntP("bands", "b", 12, "maximum number of bands to integrate")
	fs.IntP("nthreads", "j", 1, "worker goroutines")
	fs.String("archive", "", "also store the histograms in this SQLite database")
	fs.Int64Var(&runID, "run-id", 0, "archived run to attach the histograms to (0 creates a new run)")

	return cmd
}

// archiveDOS stores hists under runID, or under a new run described by info
// when runID is 0, and returns the run id.
func (a *app) archiveDOS(ctx context.Context, runID int64, info export.RunInfo, hists []*bzmesh.Histogram) (int64, error) {
	arch, err := a.openArchive()
	if err != nil {
		return 0, err
	}
	defer func() { _ = arch.Close() }()

	if runID == 0 {
		if runID, err = arch.CreateRun(ctx, info); err != nil {
			return 0, err
		}
	}
	if err = arch.SaveDOS(ctx, runID, hists); err != nil {
		return 0, err
	}
	a.log.Debug("dos archived", zap.Int64("id", runID), zap.String("db", arch.Path()))

	return runID, nil
}

// stem returns the file name of path without directories and extension.
func stem(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
