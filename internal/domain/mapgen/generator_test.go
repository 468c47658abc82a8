package mapgen

import (
	"context"
	"errors"
	"testing"

	"survivalcraft/internal/domain/world"
)

func smallParams(seed uint64) Parameters {
	p := DefaultParameters()
	p.Width, p.Height = 48, 40
	p.Seed = seed
	p.Densities = []Density{
		{Kind: world.ObjectTree, Fraction: 0.02},
		{Kind: world.ObjectRockLarge, Fraction: 0.01},
		{Kind: world.ObjectBerry, Fraction: 0.02},
	}
	return p
}

func TestGenerateIsDeterministic(t *testing.T) {
	ctx := context.Background()
	a, ra, err := Generate(ctx, smallParams(42))
	if err != nil {
		t.Fatalf("generate a: %v", err)
	}
	b, rb, err := Generate(ctx, smallParams(42))
	if err != nil {
		t.Fatalf("generate b: %v", err)
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			fa, _ := a.Floor(x, y)
			fb, _ := b.Floor(x, y)
			if fa != fb {
				t.Fatalf("floor mismatch at (%d,%d): %s vs %s", x, y, fa, fb)
			}
		}
	}
	oa, ob := a.Objects(), b.Objects()
	if len(oa) != len(ob) {
		t.Fatalf("object count mismatch: got=%d want=%d", len(ob), len(oa))
	}
	for i := range oa {
		if oa[i].Kind != ob[i].Kind || oa[i].Origin != ob[i].Origin {
			t.Fatalf("object %d mismatch: %+v vs %+v", i, oa[i], ob[i])
		}
	}
	if ra.Water != rb.Water || ra.Beach != rb.Beach || ra.Land != rb.Land {
		t.Fatalf("report mismatch: %+v vs %+v", ra, rb)
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a, _, _ := Generate(context.Background(), smallParams(1))
	b, _, _ := Generate(context.Background(), smallParams(2))
	same := true
	for y := 0; y < a.Height() && same; y++ {
		for x := 0; x < a.Width(); x++ {
			fa, _ := a.Floor(x, y)
			fb, _ := b.Floor(x, y)
			if fa != fb {
				same = false
				break
			}
		}
	}
	if same && len(a.Objects()) == len(b.Objects()) {
		t.Fatalf("expected different seeds to produce different maps")
	}
}

func TestScatterRespectsTargetAndLand(t *testing.T) {
	g, report, err := Generate(context.Background(), smallParams(7))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	placed := map[world.ObjectKind]int{}
	for _, obj := range g.Objects() {
		placed[obj.Kind]++
		for _, p := range obj.OccupiedTiles() {
			floor, ok := g.Floor(p.X, p.Y)
			if !ok || floor != world.FloorLand {
				t.Fatalf("object %s at %+v covers non-land tile %+v (%s)", obj.Kind, obj.Origin, p, floor)
			}
		}
	}
	for _, r := range report.Scatter {
		if r.Placed > r.Target {
			t.Fatalf("%s placed over target: got=%d want<=%d", r.Kind, r.Placed, r.Target)
		}
		if r.Attempts > 10*r.Target {
			t.Fatalf("%s attempts over bound: got=%d", r.Kind, r.Attempts)
		}
		if placed[r.Kind] != r.Placed {
			t.Fatalf("%s report mismatch: grid=%d report=%d", r.Kind, placed[r.Kind], r.Placed)
		}
	}
}

func TestScatterTerminatesWithoutLand(t *testing.T) {
	p := smallParams(3)
	p.WaterThreshold = 2
	g, report, err := Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if g.ObjectCount() != 0 {
		t.Fatalf("expected no objects on an all-water map, got=%d", g.ObjectCount())
	}
	if report.Water != p.Width*p.Height {
		t.Fatalf("water mismatch: got=%d want=%d", report.Water, p.Width*p.Height)
	}
	for _, r := range report.Scatter {
		if r.Attempts != 10*r.Target {
			t.Fatalf("%s attempts mismatch: got=%d want=%d", r.Kind, r.Attempts, 10*r.Target)
		}
	}
}

func TestBeachSurroundsWater(t *testing.T) {
	p := smallParams(11)
	g, _, err := Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			floor, _ := g.Floor(x, y)
			near := nearWater(g, x, y, p.BeachRadius)
			if floor == world.FloorLand && near {
				t.Fatalf("land at (%d,%d) is within beach radius of water", x, y)
			}
			if floor == world.FloorBeach && !near {
				t.Fatalf("beach at (%d,%d) has no water nearby", x, y)
			}
		}
	}
}

func TestGenerateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Generate(ctx, smallParams(1)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateRejectsUnknownKind(t *testing.T) {
	p := smallParams(1)
	p.Densities = []Density{{Kind: "castle", Fraction: 0.1}}
	if _, _, err := Generate(context.Background(), p); !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
}

func TestFractalNoiseRange(t *testing.T) {
	n := newFractalNoise(678, DefaultNoise())
	for i := 0; i < 200; i++ {
		u := float64(i) / 200
		v := n.At(u, 1-u)
		if v < -1 || v > 1 {
			t.Fatalf("noise out of range at %v: %v", u, v)
		}
	}
}
