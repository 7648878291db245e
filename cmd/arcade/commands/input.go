package commands

import (
	termbox "github.com/nsf/termbox-go"
	"github.com/pocketarcade/arcade/game"
)

type action int

const (
	actionNone action = iota
	actionTurn
	actionRestart
	actionQuit
)

func keyAction(ev termbox.Event) (action, game.Direction) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return actionTurn, game.Up
	case termbox.KeyArrowDown:
		return actionTurn, game.Down
	case termbox.KeyArrowLeft:
		return actionTurn, game.Left
	case termbox.KeyArrowRight:
		return actionTurn, game.Right
	case termbox.KeyEnter:
		return actionRestart, ""
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return actionQuit, ""
	}

	switch ev.Ch {
	case 'w', 'W':
		return actionTurn, game.Up
	case 's', 'S':
		return actionTurn, game.Down
	case 'a', 'A':
		return actionTurn, game.Left
	case 'd', 'D':
		return actionTurn, game.Right
	case 'r', 'R':
		return actionRestart, ""
	case 'q', 'Q':
		return actionQuit, ""
	}
	return actionNone, ""
}

// dragTracker turns a mouse press and release into a swipe direction.
type dragTracker struct {
	pressed bool
	x, y    int
}

// Mouse feeds a mouse event and returns a direction once a drag ends. A
// release where the press happened is a click, not a drag.
func (d *dragTracker) Mouse(ev termbox.Event) (game.Direction, bool) {
	switch ev.Key {
	case termbox.MouseLeft:
		if !d.pressed {
			d.pressed = true
			d.x, d.y = ev.MouseX, ev.MouseY
		}
	case termbox.MouseRelease:
		if !d.pressed {
			return "", false
		}
		d.pressed = false
		dx := float64(ev.MouseX-d.x) / cellWidth
		dy := float64(ev.MouseY - d.y)
		if dx == 0 && dy == 0 {
			return "", false
		}
		return game.DirectionFromDrag(dx, dy), true
	}
	return "", false
}
