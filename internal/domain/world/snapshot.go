package world

type TileView struct {
	X        int        `json:"x"`
	Y        int        `json:"y"`
	Floor    FloorKind  `json:"floor"`
	Object   ObjectKind `json:"object,omitempty"`
	ObjectID ObjectID   `json:"object_id,omitempty"`
	Origin   *Point     `json:"origin,omitempty"`
	Walkable bool       `json:"walkable"`
}

// Window returns the in-bounds tiles within Chebyshev radius of center, row
// by row.
func (g *Grid) Window(center Point, radius int) []TileView {
	if radius < 0 {
		radius = 0
	}
	out := make([]TileView, 0, (radius*2+1)*(radius*2+1))
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			floor, ok := g.Floor(x, y)
			if !ok {
				continue
			}
			v := TileView{X: x, Y: y, Floor: floor, Walkable: g.IsWalkable(x, y)}
			if obj, ok := g.Object(x, y); ok {
				origin := obj.Origin
				v.Object = obj.Kind
				v.ObjectID = obj.ID
				v.Origin = &origin
			}
			out = append(out, v)
		}
	}
	return out
}
