package mapgen

import (
	"context"
	"math"

	"survivalcraft/internal/domain/world"
)

type ScatterReport struct {
	Kind     world.ObjectKind `json:"kind"`
	Target   int              `json:"target"`
	Placed   int              `json:"placed"`
	Attempts int              `json:"attempts"`
}

type Report struct {
	Seed    uint64          `json:"seed"`
	Land    int             `json:"land"`
	Water   int             `json:"water"`
	Beach   int             `json:"beach"`
	Scatter []ScatterReport `json:"scatter"`
}

// Generate builds a new grid from p. The same parameters always produce the
// same grid. ctx is checked between passes and between terrain rows.
func Generate(ctx context.Context, p Parameters) (*world.Grid, Report, error) {
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return nil, Report{}, err
	}

	g := world.NewGrid(p.Width, p.Height)
	report := Report{Seed: p.Seed}

	if err := terrainPass(ctx, g, p); err != nil {
		return nil, Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Report{}, err
	}
	beachPass(g, p.BeachRadius)
	if err := ctx.Err(); err != nil {
		return nil, Report{}, err
	}
	report.Scatter = scatterPass(g, p)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			switch floor, _ := g.Floor(x, y); floor {
			case world.FloorWater:
				report.Water++
			case world.FloorBeach:
				report.Beach++
			default:
				report.Land++
			}
		}
	}
	return g, report, nil
}

func terrainPass(ctx context.Context, g *world.Grid, p Parameters) error {
	noise := newFractalNoise(p.Seed, p.Noise)
	w, h := float64(g.Width()), float64(g.Height())
	for y := 0; y < g.Height(); y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < g.Width(); x++ {
			if noise.At(float64(x)/w, float64(y)/h) < p.WaterThreshold {
				g.SetFloor(x, y, world.FloorWater)
			} else {
				g.SetFloor(x, y, world.FloorLand)
			}
		}
	}
	return nil
}

// beachPass turns land within radius (Chebyshev) of water into beach. Only
// land changes, so the water set it reads is final.
func beachPass(g *world.Grid, radius int) {
	if radius <= 0 {
		return
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if floor, _ := g.Floor(x, y); floor != world.FloorLand {
				continue
			}
			if nearWater(g, x, y, radius) {
				g.SetFloor(x, y, world.FloorBeach)
			}
		}
	}
}

func nearWater(g *world.Grid, x, y, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if floor, ok := g.Floor(x+dx, y+dy); ok && floor == world.FloorWater {
				return true
			}
		}
	}
	return false
}

// scatterPass places each kind in density order until its target is met or
// 10x target attempts are spent.
func scatterPass(g *world.Grid, p Parameters) []ScatterReport {
	rng := seededRNG(p.Seed, "scatter")
	total := g.Width() * g.Height()
	out := make([]ScatterReport, 0, len(p.Densities))
	for _, d := range p.Densities {
		def, _ := world.LookupObject(d.Kind)
		target := int(math.Floor(float64(total) * d.Fraction))
		r := ScatterReport{Kind: d.Kind, Target: target}
		maxAttempts := 10 * target
		for r.Placed < target && r.Attempts < maxAttempts {
			r.Attempts++
			x := rng.IntN(g.Width())
			y := rng.IntN(g.Height())
			if !g.CanPlaceObject(def, x, y) {
				continue
			}
			g.PlaceObject(def, x, y)
			r.Placed++
		}
		out = append(out, r)
	}
	return out
}
