// Package coords provides the tile coordinate system shared by the map,
// locations, and every movable entity: positions, compass stepping, and
// the distance/direction math the engine's movement rules depend on.
package coords

import (
	"math"

	"midnight/enums"
)

// Position is an integer tile coordinate. X increases east, Y increases
// south.
type Position struct {
	X, Y int
}

// NewPosition creates a position with the given coordinates.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// IsEqual checks if two positions are identical.
func (p Position) IsEqual(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// ManhattanDistance is the taxicab distance used throughout the engine
// for range checks.
func (p Position) ManhattanDistance(other Position) int {
	return int(math.Abs(float64(p.X-other.X))) + int(math.Abs(float64(p.Y-other.Y)))
}

// ChebyshevDistance is the 8-way king-move distance.
func (p Position) ChebyshevDistance(other Position) int {
	xDist := math.Abs(float64(p.X - other.X))
	yDist := math.Abs(float64(p.Y - other.Y))
	return int(math.Max(xDist, yDist))
}

// InRange checks if another position is within Manhattan distance range.
func (p Position) InRange(other Position, distance int) bool {
	return p.ManhattanDistance(other) <= distance
}

// Step returns the position one tile away from p in direction d.
func (p Position) Step(d enums.Direction) Position {
	return Position{X: p.X + d.DX(), Y: p.Y + d.DY()}
}

// DirectionTo returns the diagonal-preferred compass direction from p to
// other (calc_direction): ties on either axis fall back to the cardinal
// axis rather than a diagonal.
func (p Position) DirectionTo(other Position) enums.Direction {
	return enums.DirectionFromDelta(other.X-p.X, other.Y-p.Y)
}
