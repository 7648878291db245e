package game

import "math"

// Direction is the way the snake is travelling.
type Direction string

const (
	// Up moves towards y-1.
	Up Direction = "up"
	// Down moves towards y+1.
	Down Direction = "down"
	// Left moves towards x-1.
	Left Direction = "left"
	// Right moves towards x+1.
	Right Direction = "right"
)

// Delta returns the x,y offset of a single step.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// DirectionFromDrag maps a drag gesture to a direction using its dominant
// axis. Ties, including a zero length drag, resolve on the vertical axis.
func DirectionFromDrag(dx, dy float64) Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Down
	}
	return Up
}
