package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionFromDrag(t *testing.T) {
	tests := []struct {
		DX, DY   float64
		Expected Direction
	}{
		{DX: 40, DY: 3, Expected: Right},
		{DX: -40, DY: 3, Expected: Left},
		{DX: 2, DY: 30, Expected: Down},
		{DX: 2, DY: -30, Expected: Up},
		{DX: 10, DY: 10, Expected: Down},
		{DX: 0, DY: 0, Expected: Up},
	}
	for _, test := range tests {
		require.Equal(t, test.Expected, DirectionFromDrag(test.DX, test.DY), "drag %v,%v", test.DX, test.DY)
	}
}

func TestPoint_Step(t *testing.T) {
	p := Point{X: 3, Y: 3}
	require.Equal(t, Point{X: 3, Y: 2}, p.Step(Up))
	require.Equal(t, Point{X: 3, Y: 4}, p.Step(Down))
	require.Equal(t, Point{X: 2, Y: 3}, p.Step(Left))
	require.Equal(t, Point{X: 4, Y: 3}, p.Step(Right))
	require.Equal(t, "(3,3)", p.String())
}

func TestDirection_Valid(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		require.True(t, d.Valid())
	}
	require.False(t, Direction("sideways").Valid())
}
