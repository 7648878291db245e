package game

// Snake is the ordered body of the snake, head first.
type Snake struct {
	Body []Point
}

// NewSnake returns a single segment snake at p.
func NewSnake(p Point) Snake {
	return Snake{Body: []Point{p}}
}

// Move the snake 1 space in the specified direction. Move does not remove the
// end point of the snake, that is done once we know whether it ate.
func (s *Snake) Move(d Direction) Point {
	if len(s.Body) == 0 {
		return Point{}
	}
	head := s.Head().Step(d)
	s.Body = append([]Point{head}, s.Body...)
	return head
}

// DropTail removes the last point of the body.
func (s *Snake) DropTail() {
	if len(s.Body) == 0 {
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Head returns the first point in the body
func (s Snake) Head() Point {
	if len(s.Body) == 0 {
		return Point{}
	}
	return s.Body[0]
}

// Tail returns the last point in the body
func (s Snake) Tail() Point {
	if len(s.Body) == 0 {
		return Point{}
	}
	return s.Body[len(s.Body)-1]
}

// Len is the number of segments.
func (s Snake) Len() int { return len(s.Body) }

// Contains reports whether any segment sits on p.
func (s Snake) Contains(p Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Clone returns a snake with its own copy of the body.
func (s Snake) Clone() Snake {
	body := make([]Point, len(s.Body))
	copy(body, s.Body)
	return Snake{Body: body}
}
