package bandstructure

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/basis"
	"github.com/katalvlaran/epmbands/diag"
	"github.com/katalvlaran/epmbands/hamiltonian"
	"github.com/katalvlaran/epmbands/kpath"
	"github.com/katalvlaran/epmbands/material"
)

// Request describes one band-structure run along a symmetry path.
type Request struct {
	Material         string // registry symbol, e.g. "Si"
	Path             string // compact labels, e.g. "LGXUG"
	PointsPerSegment int    // points per path segment, ends included
	Bands            int    // bands kept per k-point
	Shells           int    // nearest-neighbour shells of the basis
	MaxVectors       int    // basis cap, 0 for none
	Workers          int    // goroutines, ≤ 1 for sequential
	Truncation       basis.Truncation
	SpinOrbit        bool
	Solver           string    // "lapack" or "jacobi"
	Reference        Reference // energy zero
}

// DefaultRequest returns silicon along LGXUG with 80 points per segment,
// 12 bands and 10 shells.
func DefaultRequest() Request {
	return Request{
		Material:         "Si",
		Path:             "LGXUG",
		PointsPerSegment: 80,
		Bands:            12,
		Shells:           10,
		Workers:          1,
		Solver:           diag.NameLAPACK,
		Reference:        ValenceMaximum,
	}
}

// Report is the outcome of Run. Path is empty for RunKPoints.
type Report struct {
	Material material.Material
	Path     kpath.Path
	Basis    basis.Set
	Result   *Result
	Gap      Gap
}

// Run performs lookup, basis generation, Hamiltonian setup, path sampling,
// diagonalization and gap adjustment. Configuration errors surface before
// any diagonalization starts.
// The solver named in req overrides a WithSolver option.
func Run(ctx context.Context, reg *material.Registry, req Request, opts ...Option) (*Report, error) {
	path, err := kpath.SampleString(req.Path, req.PointsPerSegment)
	if err != nil {
		return nil, err
	}
	rep, err := run(ctx, reg, req, path.Points, path.String(), opts)
	if err != nil {
		return nil, err
	}
	rep.Path = path

	return rep, nil
}

// RunKPoints is Run on explicit k-points (units of 2π/a), e.g. the nodes of
// a Brillouin-zone mesh. req.Path and req.PointsPerSegment are ignored.
func RunKPoints(ctx context.Context, reg *material.Registry, req Request, kpoints []r3.Vec, opts ...Option) (*Report, error) {
	return run(ctx, reg, req, kpoints, "mesh", opts)
}

func run(ctx context.Context, reg *material.Registry, req Request, kpoints []r3.Vec, label string, opts []Option) (*Report, error) {
	m, err := reg.Lookup(req.Material)
	if err != nil {
		return nil, err
	}
	set, err := basis.Generate(req.Shells, m.Lattice,
		basis.WithMaxVectors(req.MaxVectors), basis.WithTruncation(req.Truncation))
	if err != nil {
		return nil, err
	}
	b, err := hamiltonian.NewBuilder(m, set, hamiltonian.WithSpinOrbit(req.SpinOrbit))
	if err != nil {
		return nil, err
	}
	valence := m.ValenceBands(req.SpinOrbit)
	if req.Bands <= valence {
		return nil, fmt.Errorf("%d bands for %d valence bands: %w", req.Bands, valence, ErrValenceBands)
	}
	opts = append([]Option(nil), opts...)
	if req.Workers > 0 {
		opts = append(opts, WithWorkers(req.Workers))
	}
	if req.Solver != "" {
		f, err := diag.ByName(req.Solver)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSolver(f))
	}
	o := buildOptions(opts)

	res, err := ComputeContext(ctx, b, kpoints, req.Bands, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", m.Symbol, label, err)
	}
	gap, err := Adjust(res, valence, req.Reference)
	if err != nil {
		return nil, err
	}
	o.Metrics.SetGap(m.Symbol, gap.Value)
	o.Logger.Info("gap adjusted",
		zap.String("material", m.Symbol),
		zap.String("path", label),
		zap.Float64("gap_ev", gap.Value),
		zap.Bool("metallic", gap.Metallic),
		zap.Bool("direct", gap.Direct(res)),
		zap.Stringer("reference", req.Reference),
	)

	return &Report{Material: m, Basis: set, Result: res, Gap: gap}, nil
}
