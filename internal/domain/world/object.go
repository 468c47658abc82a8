package world

import (
	"errors"
	"fmt"
)

type ObjectKind string

const (
	ObjectTree      ObjectKind = "tree"
	ObjectTree2     ObjectKind = "tree2"
	ObjectRock      ObjectKind = "rock"
	ObjectRockLarge ObjectKind = "rock_large"
	ObjectBerry     ObjectKind = "berry"
)

type Anchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ObjectDefinition is the static shape of an object kind. Interactable
// offsets block movement and accept interaction; the rest of the footprint
// is occupied but passable.
type ObjectDefinition struct {
	Kind         ObjectKind
	Size         Size
	Interactable []Point
	Texture      string
	Anchor       Anchor
}

var ErrInvalidObjectDefinition = errors.New("invalid object definition")

var objectOrder = []ObjectKind{ObjectTree, ObjectTree2, ObjectRock, ObjectRockLarge, ObjectBerry}

var objectDefs = map[ObjectKind]ObjectDefinition{
	ObjectTree: {
		Kind:         ObjectTree,
		Size:         Size{Width: 1, Height: 2},
		Interactable: []Point{{X: 0, Y: 0}},
		Texture:      "tree.png",
	},
	ObjectTree2: {
		Kind:         ObjectTree2,
		Size:         Size{Width: 1, Height: 2},
		Interactable: []Point{{X: 0, Y: 0}},
		Texture:      "tree2.png",
	},
	ObjectRock: {
		Kind:         ObjectRock,
		Size:         Size{Width: 1, Height: 1},
		Interactable: []Point{{X: 0, Y: 0}},
		Texture:      "rock.png",
	},
	ObjectRockLarge: {
		Kind:         ObjectRockLarge,
		Size:         Size{Width: 2, Height: 2},
		Interactable: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		Texture:      "rock_large.png",
		Anchor:       Anchor{X: 0, Y: 0.5},
	},
	ObjectBerry: {
		Kind:         ObjectBerry,
		Size:         Size{Width: 1, Height: 1},
		Interactable: []Point{{X: 0, Y: 0}},
		Texture:      "bush.png",
	},
}

func LookupObject(kind ObjectKind) (ObjectDefinition, bool) {
	def, ok := objectDefs[kind]
	return def, ok
}

func ParseObjectKind(raw string) (ObjectKind, bool) {
	kind := ObjectKind(raw)
	_, ok := objectDefs[kind]
	return kind, ok
}

// ObjectKinds lists every known kind in catalogue order.
func ObjectKinds() []ObjectKind {
	out := make([]ObjectKind, len(objectOrder))
	copy(out, objectOrder)
	return out
}

// OccupiedOffsets enumerates the footprint column by column.
func (d ObjectDefinition) OccupiedOffsets() []Point {
	out := make([]Point, 0, d.Size.Width*d.Size.Height)
	for dx := 0; dx < d.Size.Width; dx++ {
		for dy := 0; dy < d.Size.Height; dy++ {
			out = append(out, Point{X: dx, Y: dy})
		}
	}
	return out
}

func (d ObjectDefinition) IsInteractableOffset(off Point) bool {
	for _, p := range d.Interactable {
		if p == off {
			return true
		}
	}
	return false
}

func (d ObjectDefinition) Validate() error {
	if d.Kind == "" || d.Size.Width <= 0 || d.Size.Height <= 0 {
		return ErrInvalidObjectDefinition
	}
	for _, p := range d.Interactable {
		if p.X < 0 || p.Y < 0 || p.X >= d.Size.Width || p.Y >= d.Size.Height {
			return fmt.Errorf("%w: %s offset (%d,%d) outside footprint", ErrInvalidObjectDefinition, d.Kind, p.X, p.Y)
		}
	}
	return nil
}
