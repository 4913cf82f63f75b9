package bandstructure

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/diag"
	"github.com/katalvlaran/epmbands/hamiltonian"
	"github.com/katalvlaran/epmbands/material"
)

// Compute diagonalizes the Hamiltonian of b at every k-point and keeps the
// lowest `bands` energies, converted to eV. See ComputeContext.
func Compute(b *hamiltonian.Builder, kpoints []r3.Vec, bands int, opts ...Option) (*Result, error) {
	return ComputeContext(context.Background(), b, kpoints, bands, opts...)
}

// ComputeContext is Compute with a context that stops the workers between
// k-points once it is cancelled.
// Implementation:
//   - Stage 1: validate builder, k-points and band count.
//   - Stage 2: pre-size the result table, one row per k-point.
//   - Stage 3: split [0, len(kpoints)) into min(workers, len) contiguous
//     chunks; every chunk runs with its own buffer and solver and writes
//     only its own rows.
//
// Errors:
//   - ErrNilBuilder, ErrNoKPoints, diag.ErrInvalidBandCount (Stage 1).
//   - *KPointError wrapping the solver error of the first failing k-point;
//     errors.Is(err, diag.ErrNotConverged) holds for non-convergence.
//
// Determinism:
//   - Every row depends only on its k-point, so the table is identical for
//     any worker count.
//
// Complexity:
//   - Time O(K·dim³ / W), Space O(W·dim² + K·bands).
func ComputeContext(ctx context.Context, b *hamiltonian.Builder, kpoints []r3.Vec, bands int, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	if len(kpoints) == 0 {
		return nil, ErrNoKPoints
	}
	if bands <= 0 || bands > b.Dim() {
		return nil, fmt.Errorf("bands=%d, dim=%d: %w", bands, b.Dim(), diag.ErrInvalidBandCount)
	}
	o := buildOptions(opts)

	res := &Result{
		Material: b.Material().Symbol,
		KPoints:  append([]r3.Vec(nil), kpoints...),
		Energies: make([][]float64, len(kpoints)),
	}
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(kpoints) {
		workers = len(kpoints)
	}

	start := time.Now()
	if workers == 1 {
		if err := computeChunk(ctx, b, res, 0, len(kpoints), bands, o, 0); err != nil {
			return nil, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (len(kpoints) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := min(lo+chunk, len(kpoints))
			if lo >= hi {
				break
			}
			g.Go(func() error {
				return computeChunk(gctx, b, res, lo, hi, bands, o, w)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	o.Logger.Info("band structure computed",
		zap.String("material", res.Material),
		zap.Int("kpoints", len(kpoints)),
		zap.Int("bands", bands),
		zap.Int("dim", b.Dim()),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// computeChunk fills res.Energies[lo:hi].
func computeChunk(ctx context.Context, b *hamiltonian.Builder, res *Result, lo, hi, bands int, o Options, worker int) error {
	var (
		h      = b.NewBuffer()
		solver = o.Solver()
		symbol = res.Material
		i, j   int
		t0     time.Time
		values []float64
		err    error
	)
	o.Logger.Debug("worker started", zap.Int("worker", worker), zap.Int("from", lo), zap.Int("to", hi))
	for i = lo; i < hi; i++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		t0 = time.Now()
		k := res.KPoints[i]
		if err = b.BuildInto(k, h); err != nil {
			return &KPointError{Index: i, K: k, Err: err}
		}
		if values, err = solver.Eigenvalues(h, bands); err != nil {
			return &KPointError{Index: i, K: k, Err: err}
		}
		for j = range values {
			values[j] *= material.RydbergEV
		}
		res.Energies[i] = values
		o.Metrics.ObserveKPoint(symbol, time.Since(t0))
	}
	o.Logger.Debug("worker done", zap.Int("worker", worker))

	return nil
}
