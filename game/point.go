// Package game holds the board data shared by the snake rules and its
// front-ends: grid points, directions and the snake body.
package game

import "fmt"

// Point is a single cell on the board.
type Point struct {
	X int
	Y int
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Step returns the point one cell away in the given direction. Unknown
// directions return p unchanged.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
