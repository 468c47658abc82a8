package world

import (
	"fmt"
	"hash/fnv"
)

type FloorKind string

const (
	FloorLand  FloorKind = "land"
	FloorWater FloorKind = "water"
	FloorBeach FloorKind = "beach"
)

type TextureWeight struct {
	Texture string
	Weight  int
}

type FloorDefinition struct {
	Kind           FloorKind
	Walkable       bool
	TextureWeights []TextureWeight
}

var floorDefs = map[FloorKind]FloorDefinition{
	FloorLand: {
		Kind:     FloorLand,
		Walkable: true,
		TextureWeights: []TextureWeight{
			{Texture: "land1", Weight: 1},
			{Texture: "land2", Weight: 1},
			{Texture: "land3", Weight: 4},
			{Texture: "land4", Weight: 1},
			{Texture: "land5", Weight: 1},
		},
	},
	FloorBeach: {
		Kind:     FloorBeach,
		Walkable: true,
		TextureWeights: []TextureWeight{
			{Texture: "beach1", Weight: 1},
			{Texture: "beach2", Weight: 1},
			{Texture: "beach3", Weight: 4},
			{Texture: "beach4", Weight: 1},
		},
	},
	FloorWater: {
		Kind:           FloorWater,
		Walkable:       false,
		TextureWeights: []TextureWeight{{Texture: "water", Weight: 1}},
	},
}

func LookupFloor(kind FloorKind) (FloorDefinition, bool) {
	def, ok := floorDefs[kind]
	return def, ok
}

func ParseFloorKind(raw string) (FloorKind, bool) {
	kind := FloorKind(raw)
	_, ok := floorDefs[kind]
	return kind, ok
}

// Walkable reports the floor's walkability flag. Unknown kinds are not walkable.
func (k FloorKind) Walkable() bool {
	return floorDefs[k].Walkable
}

// TextureAt picks a texture variant for (x, y). The pick is weighted and
// stable for a given seed.
func (d FloorDefinition) TextureAt(seed uint64, x, y int) string {
	total := 0
	for _, w := range d.TextureWeights {
		total += w.Weight
	}
	if total <= 0 {
		return ""
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%d:%d", seed, x, y)))
	roll := int(h.Sum64() % uint64(total))
	for _, w := range d.TextureWeights {
		if roll < w.Weight {
			return w.Texture
		}
		roll -= w.Weight
	}
	return d.TextureWeights[len(d.TextureWeights)-1].Texture
}
