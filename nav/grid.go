// Package nav builds a walkability grid over the arena's solid geometry and
// finds routes through it with A*.
package nav

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/sushi-knight/tags"
)

// Grid represents the walkable areas of the arena
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node
}

// Node is a single cell in the grid. Implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	Grid     *Grid
}

var neighborDirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// PathNeighbors returns adjacent walkable nodes. Diagonal steps are only
// allowed when both orthogonal cells are open so routes never clip a
// wall corner.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range neighborDirs {
		next := n.Grid.at(n.X+d.dx, n.Y+d.dy)
		if next == nil || !next.Walkable {
			continue
		}
		if d.dx != 0 && d.dy != 0 {
			a := n.Grid.at(n.X+d.dx, n.Y)
			b := n.Grid.at(n.X, n.Y+d.dy)
			if a == nil || b == nil || !a.Walkable || !b.Walkable {
				continue
			}
		}
		neighbors = append(neighbors, next)
	}
	return neighbors
}

// PathNeighborCost is the step length in cells.
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	t := to.(*Node)
	return math.Hypot(float64(t.X-n.X), float64(t.Y-n.Y))
}

// PathEstimatedCost is the straight-line distance in cells.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	return n.PathNeighborCost(to)
}

// NewGrid builds a grid over a width x height area. A cell is blocked when
// it, grown by clearance on every side, overlaps any solid object in the
// space.
func NewGrid(space *resolv.Space, width, height int, cellSize, clearance float64) *Grid {
	gridW := int(math.Ceil(float64(width) / cellSize))
	gridH := int(math.Ceil(float64(height) / cellSize))

	grid := &Grid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*Node, gridH),
	}

	var solids []*resolv.Object
	if space != nil {
		for _, o := range space.Objects() {
			if o.HasTags(tags.ResolvSolid) {
				solids = append(solids, o)
			}
		}
	}

	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*Node, gridW)
		for x := 0; x < gridW; x++ {
			cx := float64(x)*cellSize - clearance
			cy := float64(y)*cellSize - clearance
			size := cellSize + 2*clearance

			walkable := true
			for _, s := range solids {
				if cx < s.X+s.W && cx+size > s.X && cy < s.Y+s.H && cy+size > s.Y {
					walkable = false
					break
				}
			}
			grid.Nodes[y][x] = &Node{X: x, Y: y, Walkable: walkable, Grid: grid}
		}
	}

	return grid
}

func (g *Grid) at(x, y int) *Node {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

// cellOf converts world coordinates to the containing cell, clamped to the grid.
func (g *Grid) cellOf(p dmath.Vec2) (int, int) {
	x := max(0, min(g.Width-1, int(p.X/g.CellSize)))
	y := max(0, min(g.Height-1, int(p.Y/g.CellSize)))
	return x, y
}

// Walkable reports whether the cell containing p is open.
func (g *Grid) Walkable(p dmath.Vec2) bool {
	x, y := g.cellOf(p)
	return g.Nodes[y][x].Walkable
}

// ClearLine reports whether the straight segment from a to b stays on
// walkable cells, sampled every half cell.
func (g *Grid) ClearLine(a, b dmath.Vec2) bool {
	dist := a.Distance(b)
	step := g.CellSize / 2
	samples := int(dist/step) + 1
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		p := a.Add(b.Sub(a).MulScalar(t))
		if !g.Walkable(p) {
			return false
		}
	}
	return true
}

// FindPath returns the centres of the cells on the route from start to
// goal, excluding the start cell. Blocked endpoints snap to the nearest
// open cell. nil means no route.
func (g *Grid) FindPath(start, goal dmath.Vec2) []dmath.Vec2 {
	sx, sy := g.cellOf(start)
	gx, gy := g.cellOf(goal)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]

	if !startNode.Walkable {
		startNode = g.nearestWalkable(sx, sy)
	}
	if !goalNode.Walkable {
		goalNode = g.nearestWalkable(gx, gy)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}
	if startNode == goalNode {
		return []dmath.Vec2{g.center(goalNode)}
	}

	// astar.Path returns the route ordered from its second argument to its first
	path, _, found := astar.Path(goalNode, startNode)
	if !found {
		return nil
	}

	result := make([]dmath.Vec2, 0, len(path)-1)
	for _, p := range path[1:] {
		result = append(result, g.center(p.(*Node)))
	}
	return result
}

// nearestWalkable searches expanding squares around (x, y).
func (g *Grid) nearestWalkable(x, y int) *Node {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.at(x+dx, y+dy); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}

func (g *Grid) center(n *Node) dmath.Vec2 {
	return dmath.NewVec2(
		float64(n.X)*g.CellSize+g.CellSize/2,
		float64(n.Y)*g.CellSize+g.CellSize/2,
	)
}
