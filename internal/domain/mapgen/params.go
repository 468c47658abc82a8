package mapgen

import (
	"errors"
	"fmt"

	"survivalcraft/internal/domain/world"
)

var ErrInvalidParameters = errors.New("invalid map parameters")

// Density is the fraction of all tiles a kind should cover with origins.
type Density struct {
	Kind     world.ObjectKind `json:"kind"`
	Fraction float64          `json:"fraction"`
}

// NoiseConfig shapes the fractal terrain field. Samples are taken over the
// unit square, so Frequency is in cycles per map.
type NoiseConfig struct {
	Frequency   float64 `json:"frequency"`
	Octaves     int     `json:"octaves"`
	Persistence float64 `json:"persistence"`
	Lacunarity  float64 `json:"lacunarity"`
}

// Parameters fully determine a generated map. Densities are scattered in
// slice order.
type Parameters struct {
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	Seed           uint64      `json:"seed"`
	WaterThreshold float64     `json:"water_threshold"`
	BeachRadius    int         `json:"beach_radius"`
	Densities      []Density   `json:"densities"`
	Noise          NoiseConfig `json:"noise"`
}

func DefaultNoise() NoiseConfig {
	return NoiseConfig{
		Frequency:   1.5,
		Octaves:     6,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

func DefaultDensities() []Density {
	return []Density{
		{Kind: world.ObjectTree, Fraction: 0.007},
		{Kind: world.ObjectTree2, Fraction: 0.005},
		{Kind: world.ObjectRock, Fraction: 0.005},
		{Kind: world.ObjectRockLarge, Fraction: 0.001},
		{Kind: world.ObjectBerry, Fraction: 0.007},
	}
}

func DefaultParameters() Parameters {
	return Parameters{
		Width:          128,
		Height:         128,
		Seed:           678,
		WaterThreshold: 0.3,
		BeachRadius:    2,
		Densities:      DefaultDensities(),
		Noise:          DefaultNoise(),
	}
}

// withDefaults fills zero-valued fields. A nil Densities slice takes the
// defaults; an empty non-nil slice scatters nothing.
func (p Parameters) withDefaults() Parameters {
	def := DefaultParameters()
	if p.Width <= 0 {
		p.Width = def.Width
	}
	if p.Height <= 0 {
		p.Height = def.Height
	}
	if p.BeachRadius < 0 {
		p.BeachRadius = 0
	}
	if p.Densities == nil {
		p.Densities = def.Densities
	}
	if p.Noise.Frequency <= 0 {
		p.Noise.Frequency = def.Noise.Frequency
	}
	if p.Noise.Octaves <= 0 {
		p.Noise.Octaves = def.Noise.Octaves
	}
	if p.Noise.Persistence <= 0 {
		p.Noise.Persistence = def.Noise.Persistence
	}
	if p.Noise.Lacunarity <= 0 {
		p.Noise.Lacunarity = def.Noise.Lacunarity
	}
	return p
}

func (p Parameters) Validate() error {
	for _, d := range p.Densities {
		if _, ok := world.LookupObject(d.Kind); !ok {
			return fmt.Errorf("%w: unknown object kind %q", ErrInvalidParameters, d.Kind)
		}
		if d.Fraction < 0 || d.Fraction > 1 {
			return fmt.Errorf("%w: density %s=%v out of range", ErrInvalidParameters, d.Kind, d.Fraction)
		}
	}
	return nil
}
