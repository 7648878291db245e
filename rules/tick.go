package rules

import (
	log "github.com/sirupsen/logrus"
)

// Tick advances the snake exactly one cell in the current direction. When the
// new head lands on the food the snake grows by one and the food respawns
// anywhere on the board, otherwise the tail is dropped.
func (e *Engine) Tick(width, height int) {
	if e.snake.Len() == 0 {
		return
	}
	e.turn++
	ticksTotal.Inc()

	// 1. prepend the new head
	head := e.snake.Move(e.direction)
	// 2. grow and respawn food, or shrink back to the old length
	if head.Equal(e.food) {
		foodEaten.Inc()
		e.food = spawnFood(e.rng, width, height)
		log.WithFields(log.Fields{
			"GameID": e.id,
			"Turn":   e.turn,
			"Length": e.snake.Len(),
			"Food":   e.food,
		}).Info("snake ate")
		return
	}
	e.snake.DropTail()

	log.WithFields(log.Fields{
		"GameID":    e.id,
		"Turn":      e.turn,
		"Head":      head,
		"Direction": e.direction,
	}).Debug("tick")
}
