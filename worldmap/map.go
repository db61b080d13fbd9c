package worldmap

import (
	"midnight/config"
	"midnight/coords"
	"midnight/enums"
)

// Width and Height are the fixed map dimensions.
const (
	Width  = config.MapWidth
	Height = config.MapHeight
)

// Named landmark coordinates referenced throughout the engine's rules.
var (
	TowerOfDespair = coords.NewPosition(26, 4)
	Xajorkith      = coords.NewPosition(45, 59)
	Ushgarak       = coords.NewPosition(29, 7)
	LakeMirrowLoc  = coords.NewPosition(9, 17)
)

// RouteNode is one vertex of the fixed doomguard route graph: a location
// plus the indices of its two successor nodes in the same table.
type RouteNode struct {
	X, Y         int
	SuccA, SuccB int
}

// Map is the fixed 64x61 grid of Locations, loaded once from the compiled
// byte tables in data.go, overlaid with the route graph.
type Map struct {
	tiles  [Width * Height]*Location
	routes []RouteNode
}

// NewMap constructs the map from the compiled terrain/reference/route
// tables (data.go).
func NewMap() *Map {
	m := &Map{routes: routeTable}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			idx := y*Width + x
			mapByte := mainMapTable[idx]
			refByte := referenceTable[idx]

			feature := enums.Feature(mapByte & 0x0F)
			object := enums.Object((mapByte >> 4) & 0x0F)
			area := enums.Area(refByte & 0x3F)
			domain := refByte&0x40 != 0
			special := refByte&0x80 != 0

			m.tiles[idx] = newLocation(x, y, feature, object, area, domain, special)
		}
	}
	return m
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// At returns the Location at (x,y), or the frozen-waste sentinel if the
// coordinate is out of range.
func (m *Map) At(x, y int) *Location {
	if !inBounds(x, y) {
		return FrozenWaste()
	}
	return m.tiles[y*Width+x]
}

// AtPos is the Position-argument form of At.
func (m *Map) AtPos(p coords.Position) *Location {
	return m.At(p.X, p.Y)
}

// InFront returns the location one step from loc in direction dir; out
// of range yields the frozen-waste sentinel.
func (m *Map) InFront(loc *Location, dir enums.Direction) *Location {
	return m.At(loc.X+dir.DX(), loc.Y+dir.DY())
}

// LookingTowards advances up to 3 tiles in dir from loc, stopping early
// at the first tile that is not plains or has its special flag set.
func (m *Map) LookingTowards(loc *Location, dir enums.Direction) *Location {
	cur := loc
	for i := 0; i < 3; i++ {
		cur = m.InFront(cur, dir)
		if cur.Feature != enums.Plains || cur.Special {
			break
		}
	}
	return cur
}

// CalcDistance is the Manhattan distance between two locations.
func (m *Map) CalcDistance(a, b *Location) int {
	return coords.NewPosition(a.X, a.Y).ManhattanDistance(coords.NewPosition(b.X, b.Y))
}

// CalcDirection is the diagonal-preferred compass direction from a to b.
func (m *Map) CalcDirection(a, b *Location) enums.Direction {
	return coords.NewPosition(a.X, a.Y).DirectionTo(coords.NewPosition(b.X, b.Y))
}

// RouteNodeAt returns the i-th route node.
func (m *Map) RouteNodeAt(i int) RouteNode {
	return m.routes[i]
}

// NodeIndex returns the route-node index whose coordinate matches loc, or
// -1 if loc is not a route node.
func (m *Map) NodeIndex(loc *Location) int {
	for i, n := range m.routes {
		if n.X == loc.X && n.Y == loc.Y {
			return i
		}
	}
	return -1
}

// NextNodeA returns the location of the successor-A route node for the
// node at loc, or nil if loc is not a route node.
func (m *Map) NextNodeA(loc *Location) *Location {
	i := m.NodeIndex(loc)
	if i < 0 {
		return nil
	}
	n := m.routes[i]
	return m.At(m.routes[n.SuccA].X, m.routes[n.SuccA].Y)
}

// NextNodeB returns the location of the successor-B route node for the
// node at loc, or nil if loc is not a route node.
func (m *Map) NextNodeB(loc *Location) *Location {
	i := m.NodeIndex(loc)
	if i < 0 {
		return nil
	}
	n := m.routes[i]
	return m.At(m.routes[n.SuccB].X, m.routes[n.SuccB].Y)
}

// RouteNodeCount returns the number of nodes in the route graph.
func (m *Map) RouteNodeCount() int { return len(m.routes) }
