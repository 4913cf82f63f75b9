package material

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps material symbols to descriptors. It is immutable once
// constructed and safe for concurrent lookups.
type Registry struct {
	byKey   map[string]Material // lower-cased symbol → material
	symbols []string            // original symbols, sorted
}

// NewRegistry validates ms and indexes them by symbol. Symbols are matched
// case-insensitively, so "si" and "Si" collide.
// Errors: ErrInvalidMaterial, ErrDuplicateMaterial.
func NewRegistry(ms ...Material) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Material, len(ms))}
	for _, m := range ms {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		key := strings.ToLower(m.Symbol)
		if _, dup := r.byKey[key]; dup {
			return nil, fmt.Errorf("%q: %w", m.Symbol, ErrDuplicateMaterial)
		}
		r.byKey[key] = m.clone()
		r.symbols = append(r.symbols, m.Symbol)
	}
	sort.Strings(r.symbols)

	return r, nil
}

// Lookup returns the material registered under symbol.
// Errors: ErrUnknownMaterial wrapping the offending symbol.
func (r *Registry) Lookup(symbol string) (Material, error) {
	m, ok := r.byKey[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return Material{}, fmt.Errorf("%q: %w", symbol, ErrUnknownMaterial)
	}

	return m.clone(), nil
}

// Symbols returns the registered symbols in sorted order.
func (r *Registry) Symbols() []string { return append([]string(nil), r.symbols...) }

// Len returns the number of registered materials.
func (r *Registry) Len() int { return len(r.symbols) }

// Merge returns a new registry holding r's materials overridden or extended
// by ms. r itself is left untouched.
func (r *Registry) Merge(ms ...Material) (*Registry, error) {
	override := make(map[string]struct{}, len(ms))
	for _, m := range ms {
		override[strings.ToLower(m.Symbol)] = struct{}{}
	}
	all := make([]Material, 0, r.Len()+len(ms))
	for _, s := range r.symbols {
		key := strings.ToLower(s)
		if _, ok := override[key]; ok {
			continue
		}
		all = append(all, r.byKey[key])
	}
	all = append(all, ms...)

	return NewRegistry(all...)
}
