package commands

import (
	"testing"

	termbox "github.com/nsf/termbox-go"
	"github.com/pocketarcade/arcade/game"
	"github.com/stretchr/testify/require"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		Event     termbox.Event
		Action    action
		Direction game.Direction
	}{
		{Event: termbox.Event{Key: termbox.KeyArrowUp}, Action: actionTurn, Direction: game.Up},
		{Event: termbox.Event{Key: termbox.KeyArrowDown}, Action: actionTurn, Direction: game.Down},
		{Event: termbox.Event{Key: termbox.KeyArrowLeft}, Action: actionTurn, Direction: game.Left},
		{Event: termbox.Event{Key: termbox.KeyArrowRight}, Action: actionTurn, Direction: game.Right},
		{Event: termbox.Event{Ch: 'w'}, Action: actionTurn, Direction: game.Up},
		{Event: termbox.Event{Ch: 'D'}, Action: actionTurn, Direction: game.Right},
		{Event: termbox.Event{Ch: 'r'}, Action: actionRestart},
		{Event: termbox.Event{Key: termbox.KeyEnter}, Action: actionRestart},
		{Event: termbox.Event{Ch: 'q'}, Action: actionQuit},
		{Event: termbox.Event{Key: termbox.KeyEsc}, Action: actionQuit},
		{Event: termbox.Event{Ch: 'x'}, Action: actionNone},
	}
	for i, test := range tests {
		act, d := keyAction(test.Event)
		require.Equal(t, test.Action, act, "case %d", i)
		require.Equal(t, test.Direction, d, "case %d", i)
	}
}

func TestDragTracker(t *testing.T) {
	press := func(x, y int) termbox.Event {
		return termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft, MouseX: x, MouseY: y}
	}
	release := func(x, y int) termbox.Event {
		return termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseRelease, MouseX: x, MouseY: y}
	}

	drag := &dragTracker{}
	_, ok := drag.Mouse(press(10, 10))
	require.False(t, ok)
	_, ok = drag.Mouse(press(14, 10))
	require.False(t, ok)
	d, ok := drag.Mouse(release(20, 11))
	require.True(t, ok)
	require.Equal(t, game.Right, d)

	drag.Mouse(press(10, 10))
	d, ok = drag.Mouse(release(11, 4))
	require.True(t, ok)
	require.Equal(t, game.Up, d)

	drag.Mouse(press(10, 10))
	_, ok = drag.Mouse(release(10, 10))
	require.False(t, ok, "a click is not a drag")

	_, ok = drag.Mouse(release(30, 10))
	require.False(t, ok, "release without press")
}
