package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/katalvlaran/epmbands/bandstructure"
	"github.com/katalvlaran/epmbands/bzmesh"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT    NOT NULL,
	material   TEXT    NOT NULL,
	path       TEXT    NOT NULL,
	shells     INTEGER NOT NULL,
	spin_orbit INTEGER NOT NULL,
	kpoints    INTEGER NOT NULL,
	bands      INTEGER NOT NULL,
	gap_ev     REAL    NOT NULL,
	offset_ev  REAL    NOT NULL
);
CREATE TABLE IF NOT EXISTS energies (
	run_id  INTEGER NOT NULL REFERENCES runs(id),
	k_index INTEGER NOT NULL,
	kx REAL NOT NULL, ky REAL NOT NULL, kz REAL NOT NULL,
	band    INTEGER NOT NULL,
	energy  REAL    NOT NULL,
	PRIMARY KEY (run_id, k_index, band)
);
CREATE TABLE IF NOT EXISTS dos (
	run_id  INTEGER NOT NULL REFERENCES runs(id),
	field   TEXT    NOT NULL,
	bin     INTEGER NOT NULL,
	energy  REAL    NOT NULL,
	density REAL    NOT NULL,
	PRIMARY KEY (run_id, field, bin)
);`

// RunInfo describes one archived run.
type RunInfo struct {
	ID        int64
	CreatedAt time.Time
	Material  string
	Path      string
	Shells    int
	SpinOrbit bool
	KPoints   int
	Bands     int
	Gap       float64 // eV
	Offset    float64 // eV subtracted by the gap adjustment
}

// Archive stores runs in a SQLite database.
type Archive struct {
	db   *sql.DB
	path string
}

// OpenArchive opens (creating when needed) the database at path.
func OpenArchive(path string) (*Archive, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Archive{db: db, path: path}, nil
}

// Close releases the database.
func (a *Archive) Close() error { return a.db.Close() }

// Path returns the database file path.
func (a *Archive) Path() string { return a.path }

// SaveBands stores info and every energy of res in one transaction and
// returns the new run id. KPoints, Bands and Offset are taken from res.
func (a *Archive) SaveBands(ctx context.Context, info RunInfo, res *bandstructure.Result) (id int64, err error) {
	if res == nil || res.Len() == 0 {
		return 0, ErrNoData
	}
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now()
	}
	if info.Material == "" {
		info.Material = res.Material
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	info.KPoints, info.Bands, info.Offset = res.Len(), res.Bands(), res.Offset
	if id, err = insertRun(ctx, tx, info); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO energies (run_id, k_index, kx, ky, kz, band, energy) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()
	for k, row := range res.Energies {
		kp := res.KPoints[k]
		for b, e := range row {
			if _, err = stmt.ExecContext(ctx, id, k, kp.X, kp.Y, kp.Z, b, e); err != nil {
				return 0, fmt.Errorf("insert energy k=%d band=%d: %w", k, b, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return id, nil
}

// CreateRun stores info as a run without energies and returns its id.
// Mesh DOS runs use it to get a run to attach histograms to.
func (a *Archive) CreateRun(ctx context.Context, info RunInfo) (int64, error) {
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now()
	}

	return insertRun(ctx, a.db, info)
}

// SaveDOS stores histograms under an existing run. A field already stored
// for the run is overwritten bin by bin.
func (a *Archive) SaveDOS(ctx context.Context, runID int64, hists []*bzmesh.Histogram) (err error) {
	if len(hists) == 0 {
		return ErrNoData
	}
	if _, err = a.run(ctx, runID); err != nil {
		return err
	}
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO dos (run_id, field, bin, energy, density) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()
	for _, h := range hists {
		if len(h.Energies) != len(h.Density) {
			return fmt.Errorf("%s: %w", h.Field, ErrLengthMismatch)
		}
		for i := range h.Energies {
			if _, err = stmt.ExecContext(ctx, runID, h.Field, i, h.Energies[i], h.Density[i]); err != nil {
				return fmt.Errorf("insert dos %s bin %d: %w", h.Field, i, err)
			}
		}
	}

	return tx.Commit()
}

// Runs lists archived runs, oldest first.
func (a *Archive) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RunInfo
	for rows.Next() {
		info, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}

	return out, rows.Err()
}

// LoadBands rebuilds the result stored under runID.
func (a *Archive) LoadBands(ctx context.Context, runID int64) (*bandstructure.Result, error) {
	info, err := a.run(ctx, runID)
	if err != nil {
		return nil, err
	}
	res := &bandstructure.Result{
		Material: info.Material,
		KPoints:  make([]r3.Vec, info.KPoints),
		Energies: make([][]float64, info.KPoints),
		Offset:   info.Offset,
	}
	for k := range res.Energies {
		res.Energies[k] = make([]float64, info.Bands)
	}

	rows, err := a.db.QueryContext(ctx,
		`SELECT k_index, kx, ky, kz, band, energy FROM energies WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("select energies: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var (
			k, b int
			kp   r3.Vec
			e    float64
		)
		if err = rows.Scan(&k, &kp.X, &kp.Y, &kp.Z, &b, &e); err != nil {
			return nil, fmt.Errorf("scan energy: %w", err)
		}
		if k < 0 || k >= info.KPoints || b < 0 || b >= info.Bands {
			return nil, fmt.Errorf("run %d: energy (%d,%d) outside %dx%d: %w", runID, k, b, info.KPoints, info.Bands, ErrLengthMismatch)
		}
		res.KPoints[k] = kp
		res.Energies[k][b] = e
	}

	return res, rows.Err()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertRun(ctx context.Context, db execer, info RunInfo) (int64, error) {
	r, err := db.ExecContext(ctx,
		`INSERT INTO runs (created_at, material, path, shells, spin_orbit, kpoints, bands, gap_ev, offset_ev)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		info.CreatedAt.UTC().Format(time.RFC3339Nano), info.Material, info.Path, info.Shells,
		info.SpinOrbit, info.KPoints, info.Bands, info.Gap, info.Offset)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	return r.LastInsertId()
}

const runColumns = `id, created_at, material, path, shells, spin_orbit, kpoints, bands, gap_ev, offset_ev`

type scanner interface{ Scan(dest ...any) error }

func scanRun(s scanner) (RunInfo, error) {
	var (
		info    RunInfo
		created string
	)
	if err := s.Scan(&info.ID, &created, &info.Material, &info.Path, &info.Shells,
		&info.SpinOrbit, &info.KPoints, &info.Bands, &info.Gap, &info.Offset); err != nil {
		return RunInfo{}, fmt.Errorf("scan run: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return RunInfo{}, fmt.Errorf("run %d created_at %q: %w", info.ID, created, err)
	}
	info.CreatedAt = t

	return info, nil
}

func (a *Archive) run(ctx context.Context, id int64) (RunInfo, error) {
	info, err := scanRun(a.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return RunInfo{}, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}

	return info, err
}
