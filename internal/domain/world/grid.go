package world

import "sort"

// ObjectID addresses a placed object in a grid's arena. Zero means no object.
type ObjectID int

type PlacedObject struct {
	ID     ObjectID   `json:"id"`
	Kind   ObjectKind `json:"kind"`
	Origin Point      `json:"origin"`
}

// Definition returns the static definition of the object's kind. Kinds that
// are no longer catalogued yield a zero definition, which blocks nothing.
func (o PlacedObject) Definition() ObjectDefinition {
	return objectDefs[o.Kind]
}

func (o PlacedObject) OccupiedTiles() []Point {
	offsets := o.Definition().OccupiedOffsets()
	out := make([]Point, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, o.Origin.Add(off))
	}
	return out
}

func (o PlacedObject) InteractableTiles() []Point {
	def := o.Definition()
	out := make([]Point, 0, len(def.Interactable))
	for _, off := range def.Interactable {
		out = append(out, o.Origin.Add(off))
	}
	return out
}

// BlocksAt reports whether the object blocks movement at (x, y).
func (o PlacedObject) BlocksAt(x, y int) bool {
	return o.Definition().IsInteractableOffset(Point{X: x - o.Origin.X, Y: y - o.Origin.Y})
}

func (o PlacedObject) IsInteractable(x, y int) bool {
	return o.BlocksAt(x, y)
}

type cell struct {
	floor  FloorKind
	object ObjectID
}

type arenaEntry struct {
	obj  PlacedObject
	refs int
}

// Grid is a width x height tile map. Each cell has a floor and at most one
// object handle; every cell of a footprint holds the same handle.
type Grid struct {
	width   int
	height  int
	cells   []cell
	objects map[ObjectID]*arenaEntry
	nextID  ObjectID
}

// MaxSide bounds the width and height of generated and restored worlds.
const MaxSide = 1024

// NewGrid returns a grid of land tiles.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i].floor = FloorLand
	}
	return &Grid{
		width:   width,
		height:  height,
		cells:   cells,
		objects: map[ObjectID]*arenaEntry{},
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) SetFloor(x, y int, kind FloorKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)].floor = kind
}

func (g *Grid) Floor(x, y int) (FloorKind, bool) {
	if !g.InBounds(x, y) {
		return "", false
	}
	return g.cells[g.index(x, y)].floor, true
}

// CanPlaceObject reports whether the whole footprint anchored at (x, y) is in
// bounds, unoccupied and on land.
func (g *Grid) CanPlaceObject(def ObjectDefinition, x, y int) bool {
	if def.Size.Width <= 0 || def.Size.Height <= 0 {
		return false
	}
	for dx := 0; dx < def.Size.Width; dx++ {
		for dy := 0; dy < def.Size.Height; dy++ {
			tx, ty := x+dx, y+dy
			if !g.InBounds(tx, ty) {
				return false
			}
			c := g.cells[g.index(tx, ty)]
			if c.object != 0 || c.floor != FloorLand {
				return false
			}
		}
	}
	return true
}

// PlaceObject writes one object handle into every in-bounds footprint tile.
// It does not validate; callers check CanPlaceObject first. Tiles it
// overwrites stop referencing their previous object.
func (g *Grid) PlaceObject(def ObjectDefinition, x, y int) (PlacedObject, bool) {
	g.nextID++
	placed := PlacedObject{ID: g.nextID, Kind: def.Kind, Origin: Point{X: x, Y: y}}
	entry := &arenaEntry{obj: placed}
	for dx := 0; dx < def.Size.Width; dx++ {
		for dy := 0; dy < def.Size.Height; dy++ {
			tx, ty := x+dx, y+dy
			if !g.InBounds(tx, ty) {
				continue
			}
			g.release(g.index(tx, ty))
			g.cells[g.index(tx, ty)].object = placed.ID
			entry.refs++
		}
	}
	if entry.refs == 0 {
		return PlacedObject{}, false
	}
	g.objects[placed.ID] = entry
	return placed, true
}

// RemoveObject clears the object reference at (x, y) only. Other footprint
// tiles keep referencing the object; see RemoveObjectFootprint.
func (g *Grid) RemoveObject(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.release(g.index(x, y))
}

// RemoveObjectFootprint clears every tile that references the object
// covering (x, y) and returns the removed object.
func (g *Grid) RemoveObjectFootprint(x, y int) (PlacedObject, bool) {
	obj, ok := g.Object(x, y)
	if !ok {
		return PlacedObject{}, false
	}
	for _, p := range obj.OccupiedTiles() {
		if !g.InBounds(p.X, p.Y) {
			continue
		}
		i := g.index(p.X, p.Y)
		if g.cells[i].object == obj.ID {
			g.release(i)
		}
	}
	// Tiles outside the kind's current footprint may still hold the handle
	// when the object was written by a non-validating PlaceObject.
	if _, alive := g.objects[obj.ID]; alive {
		for i := range g.cells {
			if g.cells[i].object == obj.ID {
				g.release(i)
			}
		}
	}
	return obj, true
}

func (g *Grid) release(i int) {
	id := g.cells[i].object
	if id == 0 {
		return
	}
	g.cells[i].object = 0
	entry, ok := g.objects[id]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(g.objects, id)
	}
}

func (g *Grid) Object(x, y int) (PlacedObject, bool) {
	if !g.InBounds(x, y) {
		return PlacedObject{}, false
	}
	id := g.cells[g.index(x, y)].object
	if id == 0 {
		return PlacedObject{}, false
	}
	entry, ok := g.objects[id]
	if !ok {
		return PlacedObject{}, false
	}
	return entry.obj, true
}

// IsWalkable is false out of bounds, on non-walkable floors and on the
// blocking offsets of an object.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	c := g.cells[g.index(x, y)]
	if !c.floor.Walkable() {
		return false
	}
	if c.object == 0 {
		return true
	}
	entry, ok := g.objects[c.object]
	if !ok {
		return true
	}
	return !entry.obj.BlocksAt(x, y)
}

// Objects lists every live object once, ordered by origin row then column.
func (g *Grid) Objects() []PlacedObject {
	out := make([]PlacedObject, 0, len(g.objects))
	for _, e := range g.objects {
		out = append(out, e.obj)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Origin, out[j].Origin
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (g *Grid) ObjectCount() int {
	return len(g.objects)
}

// FirstWalkable scans the bottom-right quadrant row by row, then the whole
// grid, for a walkable tile.
func (g *Grid) FirstWalkable() (Point, bool) {
	for y := g.height / 2; y < g.height; y++ {
		for x := g.width / 2; x < g.width; x++ {
			if g.IsWalkable(x, y) {
				return Point{X: x, Y: y}, true
			}
		}
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.IsWalkable(x, y) {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}
