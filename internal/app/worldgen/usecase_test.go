package worldgen

import (
	"context"
	"errors"
	"testing"

	"survivalcraft/internal/app/session"
	"survivalcraft/internal/domain/mapgen"
	"survivalcraft/internal/domain/world"
)

func baseParams() mapgen.Parameters {
	p := mapgen.DefaultParameters()
	p.Width, p.Height = 24, 16
	p.WaterThreshold = -2
	p.Densities = []mapgen.Density{}
	return p
}

func TestUseCase_AppliesOverridesAndInstalls(t *testing.T) {
	s := session.New(session.Config{})
	seed := uint64(77)
	resp, err := UseCase{Session: s, Base: baseParams()}.Execute(context.Background(), Request{
		Name:  " island ",
		Seed:  &seed,
		Width: 30,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.WorldName != "island" || resp.Report.Seed != 77 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if got, want := resp.Report.Land, 30*16; got != want {
		t.Fatalf("land mismatch: got=%d want=%d", got, want)
	}
	if s.WorldName() != "island" {
		t.Fatalf("world not installed: %q", s.WorldName())
	}
	if resp.Spawn.X != 15 || resp.Spawn.Y != 8 {
		t.Fatalf("unexpected spawn: %+v", resp.Spawn)
	}
}

func TestUseCase_RejectsBadSize(t *testing.T) {
	uc := UseCase{Session: session.New(session.Config{}), Base: baseParams()}
	for _, req := range []Request{{Width: -1}, {Height: world.MaxSide + 1}} {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("request %+v: expected ErrInvalidRequest, got %v", req, err)
		}
	}
}

func TestUseCase_PropagatesInvalidParameters(t *testing.T) {
	base := baseParams()
	base.Densities = []mapgen.Density{{Kind: "castle", Fraction: 0.1}}
	_, err := UseCase{Session: session.New(session.Config{}), Base: base}.Execute(context.Background(), Request{})
	if !errors.Is(err, mapgen.ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
}
