package rules

import (
	"math/rand"
	"time"

	"github.com/pocketarcade/arcade/game"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// CellSize is the edge length of a single grid cell in screen units.
	CellSize = 20
	// DefaultTickInterval is how often the driver advances the snake.
	DefaultTickInterval = 200 * time.Millisecond
)

var (
	// InitialHead is where the snake starts every session.
	InitialHead = game.Point{X: 10, Y: 10}
	// InitialFood is where the first food of every session is placed.
	InitialFood = game.Point{X: 15, Y: 15}
	// InitialDirection is the direction the snake starts travelling in.
	InitialDirection = game.Right
)

// Engine owns the state of a single snake session. It is not safe for
// concurrent use, the driver is expected to own it from one goroutine.
type Engine struct {
	id        string
	turn      int64
	snake     game.Snake
	food      game.Point
	direction game.Direction
	state     GameState
	cause     string
	rng       *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used to respawn food.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// NewEngine returns an engine in its initial state.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.id = uuid.NewV4().String()
	e.turn = 0
	e.snake = game.NewSnake(InitialHead)
	e.food = InitialFood
	e.direction = InitialDirection
	e.state = GameStatePlaying
	e.cause = ""
}

// Restart puts the session back into its initial state from any state.
// Re-arming the timer is up to the driver.
func (e *Engine) Restart() {
	old := e.id
	e.reset()
	log.WithFields(log.Fields{
		"GameID":     e.id,
		"PreviousID": old,
	}).Info("restart")
}

// SetDirection overwrites the current direction. Reversing into the neck is
// allowed and ends the game on the next collision check.
func (e *Engine) SetDirection(d game.Direction) {
	log.WithFields(log.Fields{
		"GameID":    e.id,
		"Turn":      e.turn,
		"Direction": d,
	}).Debug("set direction")
	e.direction = d
}

// CheckCollision ends the game when the head is off the board or on its own
// body. It returns true when the game is over so the driver can stop its
// timer.
func (e *Engine) CheckCollision(width, height int) bool {
	cause, dead := checkForDeath(width, height, e.snake)
	if !dead {
		return e.state == GameStateOver
	}
	if e.state != GameStateOver {
		gamesOver.WithLabelValues(cause).Inc()
		log.WithFields(log.Fields{
			"GameID": e.id,
			"Turn":   e.turn,
			"Head":   e.snake.Head(),
			"Cause":  cause,
			"Length": e.snake.Len(),
		}).Info("game over")
	}
	e.state = GameStateOver
	e.cause = cause
	return true
}

// Step runs a single timer invocation: move then check for collisions. A
// finished game is left untouched. It returns true when the game is over.
func (e *Engine) Step(width, height int) bool {
	if e.state != GameStatePlaying {
		return true
	}
	defer instrument()()
	e.Tick(width, height)
	return e.CheckCollision(width, height)
}

// ID is the session id, regenerated on every restart.
func (e *Engine) ID() string { return e.id }

// Turn is the number of ticks since the session started.
func (e *Engine) Turn() int64 { return e.turn }

// Snake returns a copy of the body, head first.
func (e *Engine) Snake() []game.Point { return e.snake.Clone().Body }

// Food is the current food cell.
func (e *Engine) Food() game.Point { return e.food }

// Direction is the current travel direction.
func (e *Engine) Direction() game.Direction { return e.direction }

// State is the current game state.
func (e *Engine) State() GameState { return e.state }

// Snapshot is a copy of the engine state for rendering.
type Snapshot struct {
	ID        string
	Turn      int64
	Snake     []game.Point
	Food      game.Point
	Direction game.Direction
	State     GameState
	Cause     string
}

// Score is the number of food cells eaten this session.
func (s Snapshot) Score() int {
	if len(s.Snake) == 0 {
		return 0
	}
	return len(s.Snake) - 1
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		ID:        e.id,
		Turn:      e.turn,
		Snake:     e.Snake(),
		Food:      e.food,
		Direction: e.direction,
		State:     e.state,
		Cause:     e.cause,
	}
}

// BoardFromScreen returns the board size in cells for a screen of the given
// size. Partial cells are dropped.
func BoardFromScreen(screenWidth, screenHeight, cellSize int) (width, height int) {
	if cellSize <= 0 {
		return 0, 0
	}
	return screenWidth / cellSize, screenHeight / cellSize
}
