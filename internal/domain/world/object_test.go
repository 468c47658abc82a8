package world

import "testing"

func TestObjectDefinitionsAreValid(t *testing.T) {
	for _, kind := range ObjectKinds() {
		def, ok := LookupObject(kind)
		if !ok {
			t.Fatalf("missing definition for %s", kind)
		}
		if err := def.Validate(); err != nil {
			t.Fatalf("definition %s invalid: %v", kind, err)
		}
	}

	bad := ObjectDefinition{Kind: "stump", Size: Size{Width: 1, Height: 1}, Interactable: []Point{{X: 1, Y: 0}}}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected offset outside footprint to be rejected")
	}
}

func TestParseObjectKind(t *testing.T) {
	if kind, ok := ParseObjectKind("rock_large"); !ok || kind != ObjectRockLarge {
		t.Fatalf("ParseObjectKind(rock_large)=%q,%v", kind, ok)
	}
	if _, ok := ParseObjectKind("boulder"); ok {
		t.Fatalf("expected unknown kind to be rejected")
	}
}

func TestOccupiedOffsetsCoverFootprint(t *testing.T) {
	def, _ := LookupObject(ObjectRockLarge)
	got := def.OccupiedOffsets()
	want := []Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("offset count mismatch: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("offset %d mismatch: got=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestFloorTextureAtIsStableAndWeighted(t *testing.T) {
	def, _ := LookupFloor(FloorLand)
	a := def.TextureAt(7, 3, 4)
	b := def.TextureAt(7, 3, 4)
	if a != b || a == "" {
		t.Fatalf("expected stable texture, got %q and %q", a, b)
	}
	water, _ := LookupFloor(FloorWater)
	if got := water.TextureAt(1, 0, 0); got != "water" {
		t.Fatalf("water texture=%q want water", got)
	}
}
