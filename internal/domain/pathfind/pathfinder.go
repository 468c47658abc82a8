package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"survivalcraft/internal/domain/world"
)

const (
	straightCost = 10
	diagonalCost = 14
)

var neighborOffsets = []world.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Pathfinder keeps a node per walkable tile of a grid, connected to its eight
// neighbours. It is not synchronised with the grid: callers run UpdateTile
// after each mutation or RebuildFromMap after replacing the grid.
type Pathfinder struct {
	grid  *world.Grid
	nodes mapset.Set[world.Point]
}

func New(grid *world.Grid) *Pathfinder {
	p := &Pathfinder{}
	p.RebuildFromMap(grid)
	return p
}

// RebuildFromMap re-derives every node from grid and adopts it as the source
// for later UpdateTile calls.
func (p *Pathfinder) RebuildFromMap(grid *world.Grid) {
	p.grid = grid
	p.nodes = mapset.New[world.Point]()
	if grid == nil {
		return
	}
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.IsWalkable(x, y) {
				p.nodes.Put(world.Point{X: x, Y: y})
			}
		}
	}
}

// UpdateTile inserts the node when the tile became walkable and removes it
// when it became blocked. Anything else is a no-op.
func (p *Pathfinder) UpdateTile(x, y int) {
	if p.grid == nil || !p.grid.InBounds(x, y) {
		return
	}
	pt := world.Point{X: x, Y: y}
	walkable := p.grid.IsWalkable(x, y)
	present := p.nodes.Has(pt)
	switch {
	case walkable && !present:
		p.nodes.Put(pt)
	case !walkable && present:
		p.nodes.Remove(pt)
	}
}

func (p *Pathfinder) Contains(x, y int) bool {
	return p.nodes.Has(world.Point{X: x, Y: y})
}

func (p *Pathfinder) NodeCount() int {
	return p.nodes.Size()
}

type openEntry struct {
	pt  world.Point
	f   int
	h   int
	seq int
}

// FindPath returns the cheapest 8-connected route from start to end, both
// inclusive. It is empty when either end is not a node or no route exists.
func (p *Pathfinder) FindPath(start, end world.Point) []world.Point {
	if !p.nodes.Has(start) || !p.nodes.Has(end) {
		return nil
	}
	if start == end {
		return []world.Point{start}
	}

	open := heap.New[openEntry](func(a, b openEntry) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		if a.h != b.h {
			return a.h < b.h
		}
		return a.seq < b.seq
	})
	closed := mapset.New[world.Point]()
	gScore := map[world.Point]int{start: 0}
	cameFrom := map[world.Point]world.Point{}
	seq := 0

	open.Push(openEntry{pt: start, f: octile(start, end), h: octile(start, end)})
	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed.Has(cur.pt) {
			continue
		}
		if cur.pt == end {
			return reconstruct(cameFrom, start, end)
		}
		closed.Put(cur.pt)

		for _, off := range neighborOffsets {
			next := cur.pt.Add(off)
			if !p.nodes.Has(next) || closed.Has(next) {
				continue
			}
			step := straightCost
			if off.X != 0 && off.Y != 0 {
				step = diagonalCost
			}
			g := gScore[cur.pt] + step
			if old, ok := gScore[next]; ok && g >= old {
				continue
			}
			gScore[next] = g
			cameFrom[next] = cur.pt
			seq++
			h := octile(next, end)
			open.Push(openEntry{pt: next, f: g + h, h: h, seq: seq})
		}
	}
	return nil
}

func reconstruct(cameFrom map[world.Point]world.Point, start, end world.Point) []world.Point {
	path := []world.Point{end}
	for cur := end; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func octile(a, b world.Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	return straightCost*(dx+dy) + (diagonalCost-2*straightCost)*min(dx, dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FindNearestWalkableAround scans square rings of radius 1..searchRadius
// around (x, y), row-major within each box, skipping the centre. Inner cells
// are revisited at larger radii.
func (p *Pathfinder) FindNearestWalkableAround(x, y, searchRadius int) (world.Point, bool) {
	if p.grid == nil {
		return world.Point{}, false
	}
	for radius := 1; radius <= searchRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if !p.grid.InBounds(nx, ny) {
					continue
				}
				if p.grid.IsWalkable(nx, ny) && p.nodes.Has(world.Point{X: nx, Y: ny}) {
					return world.Point{X: nx, Y: ny}, true
				}
			}
		}
	}
	return world.Point{}, false
}
