package material

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/epmbands/basis"
)

// fileSchema is the on-disk layout of a material table:
//
//	materials:
//	  - symbol: AlAs
//	    name: Aluminium Arsenide
//	    latticeConstant: 5.66
//	    lattice: fcc
//	    valenceElectrons: 8
//	    formFactors:
//	      - {g2: 3, symmetric: -0.221, antisymmetric: 0.08}
//	    spinOrbit: {symmetric: 0.0003}
type fileSchema struct {
	Materials []materialSchema `yaml:"materials"`
}

type materialSchema struct {
	Symbol           string             `yaml:"symbol"`
	Name             string             `yaml:"name,omitempty"`
	LatticeConstant  float64            `yaml:"latticeConstant"`
	Lattice          string             `yaml:"lattice,omitempty"`
	ValenceElectrons int                `yaml:"valenceElectrons"`
	Offset           []float64          `yaml:"offset,omitempty,flow"`
	FormFactors      []formFactorSchema `yaml:"formFactors"`
	SpinOrbit        spinOrbitSchema    `yaml:"spinOrbit,omitempty"`
}

type formFactorSchema struct {
	G2            int     `yaml:"g2"`
	Symmetric     float64 `yaml:"symmetric,omitempty"`
	Antisymmetric float64 `yaml:"antisymmetric,omitempty"`
}

type spinOrbitSchema struct {
	Symmetric     float64 `yaml:"symmetric,omitempty"`
	Antisymmetric float64 `yaml:"antisymmetric,omitempty"`
}

// LoadYAML decodes a material table. Unknown keys are rejected. A missing
// lattice defaults to fcc and a missing offset to (1/8,1/8,1/8).
// Every decoded material is validated.
func LoadYAML(r io.Reader) ([]Material, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fileSchema
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("material: decode yaml: %w", err)
	}

	out := make([]Material, 0, len(f.Materials))
	for i, s := range f.Materials {
		m, err := s.material()
		if err != nil {
			return nil, fmt.Errorf("materials[%d]: %w", i, err)
		}
		if err = m.Validate(); err != nil {
			return nil, fmt.Errorf("materials[%d]: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// LoadYAMLFile opens path and calls LoadYAML.
func LoadYAMLFile(path string) ([]Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadYAML(f)
}

// MarshalYAML encodes ms in the LoadYAML layout.
func MarshalYAML(ms ...Material) ([]byte, error) {
	f := fileSchema{Materials: make([]materialSchema, len(ms))}
	for i, m := range ms {
		s := materialSchema{
			Symbol:           m.Symbol,
			Name:             m.Name,
			LatticeConstant:  m.LatticeConstant,
			Lattice:          m.Lattice.String(),
			ValenceElectrons: m.ValenceElectrons,
			Offset:           []float64{m.Offset.X, m.Offset.Y, m.Offset.Z},
			SpinOrbit:        spinOrbitSchema(m.SpinOrbit),
		}
		for _, ff := range m.FormFactors {
			s.FormFactors = append(s.FormFactors, formFactorSchema(ff))
		}
		f.Materials[i] = s
	}

	return yaml.Marshal(&f)
}

func (s materialSchema) material() (Material, error) {
	lat, err := basis.ParseLattice(s.Lattice)
	if err != nil {
		return Material{}, fmt.Errorf("%s: %v: %w", s.Symbol, err, ErrInvalidMaterial)
	}
	offset := tau
	switch len(s.Offset) {
	case 0:
	case 3:
		offset = r3.Vec{X: s.Offset[0], Y: s.Offset[1], Z: s.Offset[2]}
	default:
		return Material{}, fmt.Errorf("%s: offset needs 3 components, got %d: %w", s.Symbol, len(s.Offset), ErrInvalidMaterial)
	}
	m := Material{
		Symbol:           s.Symbol,
		Name:             s.Name,
		LatticeConstant:  s.LatticeConstant,
		Lattice:          lat,
		ValenceElectrons: s.ValenceElectrons,
		Offset:           offset,
		SpinOrbit:        SpinOrbit(s.SpinOrbit),
	}
	for _, ff := range s.FormFactors {
		m.FormFactors = append(m.FormFactors, FormFactor(ff))
	}

	return m, nil
}
