// Package worker drives a snake session. A Loop owns the engine on a single
// goroutine, advancing it on a fixed interval while the game is being played
// and applying player commands between ticks.
package worker

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pocketarcade/arcade/game"
	"github.com/pocketarcade/arcade/rules"
	log "github.com/sirupsen/logrus"
)

// ErrStopped is returned by commands sent after the loop has exited.
var ErrStopped = errors.New("worker: loop stopped")

// BoardFunc returns the current board size in cells.
type BoardFunc func() (width, height int)

// RenderFunc is called from the loop goroutine after every change to the
// engine state.
type RenderFunc func(rules.Snapshot)

type commandKind int

const (
	commandTurn commandKind = iota
	commandRestart
)

type command struct {
	kind      commandKind
	direction game.Direction
}

// Loop is the periodic timer around an engine.
type Loop struct {
	Engine   *rules.Engine
	Board    BoardFunc
	Interval time.Duration
	Render   RenderFunc

	commands chan command
	done     chan struct{}
}

// New returns a loop for the engine. It does nothing until Run is called.
func New(engine *rules.Engine, board BoardFunc, interval time.Duration, render RenderFunc) *Loop {
	if interval <= 0 {
		interval = rules.DefaultTickInterval
	}
	return &Loop{
		Engine:   engine,
		Board:    board,
		Interval: interval,
		Render:   render,
		commands: make(chan command),
		done:     make(chan struct{}),
	}
}

// Turn asks the loop to change direction before the next tick.
func (l *Loop) Turn(d game.Direction) error {
	return l.send(command{kind: commandTurn, direction: d})
}

// Restart resets the engine and re-arms the timer.
func (l *Loop) Restart() error {
	return l.send(command{kind: commandRestart})
}

func (l *Loop) send(c command) error {
	select {
	case l.commands <- c:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Run ticks the engine until ctx is done. The timer is stopped when the game
// ends and armed again on restart.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := time.NewTicker(l.Interval)
	tick := ticker.C
	defer func() { ticker.Stop() }()

	log.WithFields(log.Fields{
		"GameID":   l.Engine.ID(),
		"Interval": l.Interval,
	}).Info("loop started")
	l.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-l.commands:
			switch c.kind {
			case commandTurn:
				l.Engine.SetDirection(c.direction)
			case commandRestart:
				l.Engine.Restart()
				ticker.Stop()
				ticker = time.NewTicker(l.Interval)
				tick = ticker.C
				l.render()
			}
		case <-tick:
			width, height := l.Board()
			if over := l.Engine.Step(width, height); over {
				ticker.Stop()
				tick = nil
				log.WithFields(log.Fields{
					"GameID": l.Engine.ID(),
					"Turn":   l.Engine.Turn(),
				}).Info("timer stopped")
			}
			l.render()
		}
	}
}

func (l *Loop) render() {
	if l.Render != nil {
		l.Render(l.Engine.Snapshot())
	}
}
