package commands

import (
	"sync"

	"github.com/pocketarcade/arcade/rules"
	"github.com/pocketarcade/arcade/worker"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type drawFunc func(s rules.Snapshot, width, height int) error

// screen holds the last snapshot from the loop so it can be drawn again
// when the terminal is resized.
type screen struct {
	sync.Mutex
	last    *rules.Snapshot
	board   worker.BoardFunc
	draw    drawFunc
	limiter *rate.Limiter
}

func newScreen(board worker.BoardFunc, draw drawFunc, limiter *rate.Limiter) *screen {
	return &screen{
		board:   board,
		draw:    draw,
		limiter: limiter,
	}
}

// Show draws s and keeps it for later redraws.
func (sc *screen) Show(s rules.Snapshot) {
	sc.Lock()
	defer sc.Unlock()

	sc.last = &s
	sc.redraw()
}

// Redraw draws the last snapshot again, dropping requests over the limit.
func (sc *screen) Redraw() bool {
	if !sc.limiter.Allow() {
		return false
	}
	sc.Lock()
	defer sc.Unlock()

	if sc.last == nil {
		return false
	}
	sc.redraw()
	return true
}

// Last returns the most recent snapshot.
func (sc *screen) Last() (rules.Snapshot, bool) {
	sc.Lock()
	defer sc.Unlock()

	if sc.last == nil {
		return rules.Snapshot{}, false
	}
	return *sc.last, true
}

func (sc *screen) redraw() {
	width, height := sc.board()
	if err := sc.draw(*sc.last, width, height); err != nil {
		log.WithError(err).Error("unable to draw frame")
	}
}
