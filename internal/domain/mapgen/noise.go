package mapgen

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// fractalNoise sums octaves of opensimplex noise and normalises the sum back
// to [-1, 1].
type fractalNoise struct {
	src opensimplex.Noise
	cfg NoiseConfig
}

func newFractalNoise(seed uint64, cfg NoiseConfig) fractalNoise {
	return fractalNoise{
		src: opensimplex.New(int64(seed & math.MaxInt64)),
		cfg: cfg,
	}
}

// At samples the field at a point of the unit square.
func (n fractalNoise) At(u, v float64) float64 {
	freq := n.cfg.Frequency
	amp := 1.0
	sum, norm := 0.0, 0.0
	for i := 0; i < n.cfg.Octaves; i++ {
		sum += amp * n.src.Eval2(u*freq, v*freq)
		norm += amp
		amp *= n.cfg.Persistence
		freq *= n.cfg.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return max(-1, min(1, sum/norm))
}
