package basis

import (
	"fmt"
	"sort"
)

// Generate returns the plane-wave basis made of the origin plus the first
// `shells` nearest-neighbour shells of the reciprocal lattice of l.
// Implementation:
//   - Stage 1: validate shells > 0 and the lattice.
//   - Stage 2: enumerate the cube [-R,R]³, growing R until it holds shells+1
//     distinct |G|² values (every vector with |G|² ≤ R² lies in the cube, so
//     those shells are complete).
//   - Stage 3: sort by (|G|², x, y, z) and keep whole shells up to the cap.
//
// Errors:
//   - ErrInvalidShellCount, ErrUnknownLattice, ErrEmptyBasis.
//
// Determinism:
//   - Output order is a total order on vectors; repeated calls are identical.
//
// Complexity:
//   - Time O(R³ log R³), Space O(R³); R ≈ √(|G|²_max).
func Generate(shells int, l Lattice, opts ...Option) (Set, error) {
	if shells <= 0 {
		return Set{}, fmt.Errorf("shells=%d: %w", shells, ErrInvalidShellCount)
	}
	if !l.Valid() {
		return Set{}, fmt.Errorf("%v: %w", l, ErrUnknownLattice)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		radius  = 1
		vectors []Vector
		norms   []int
	)
	for {
		vectors, norms = enumerate(l, radius)
		if len(norms) > shells {
			break
		}
		radius++
	}

	sort.Slice(vectors, func(i, j int) bool { return vectors[i].less(vectors[j]) })
	maxNorm := norms[shells]

	kept := make([]Vector, 0, len(vectors))
	keptShells := make([]int, 0, shells+1)
	for start := 0; start < len(vectors); {
		n2 := vectors[start].Norm2()
		if n2 > maxNorm {
			break
		}
		end := start
		for end < len(vectors) && vectors[end].Norm2() == n2 {
			end++
		}
		if o.MaxVectors > 0 && len(kept)+(end-start) > o.MaxVectors {
			if o.Truncation == CompleteShell {
				kept = append(kept, vectors[start:end]...)
				keptShells = append(keptShells, n2)
			}

			break
		}
		kept = append(kept, vectors[start:end]...)
		keptShells = append(keptShells, n2)
		start = end
	}
	if len(kept) == 0 {
		return Set{}, ErrEmptyBasis
	}

	return Set{lattice: l, vectors: kept, shells: keptShells}, nil
}

// enumerate lists the lattice vectors with |G|² ≤ radius² and their distinct
// norms, ascending.
func enumerate(l Lattice, radius int) ([]Vector, []int) {
	var (
		limit   = radius * radius
		vectors []Vector
		seen    = make(map[int]struct{})
		norms   []int
		x, y, z int
	)
	for x = -radius; x <= radius; x++ {
		for y = -radius; y <= radius; y++ {
			for z = -radius; z <= radius; z++ {
				v := Vector{x, y, z}
				n2 := v.Norm2()
				if n2 > limit || !l.contains(v) {
					continue
				}
				vectors = append(vectors, v)
				if _, ok := seen[n2]; !ok {
					seen[n2] = struct{}{}
					norms = append(norms, n2)
				}
			}
		}
	}
	sort.Ints(norms)

	return vectors, norms
}
