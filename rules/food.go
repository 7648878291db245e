package rules

import (
	"math/rand"

	"github.com/pocketarcade/arcade/game"
	log "github.com/sirupsen/logrus"
)

// spawnFood picks a cell uniformly from the whole board. Cells under the
// snake are not excluded.
func spawnFood(rng *rand.Rand, width, height int) game.Point {
	if width <= 0 || height <= 0 {
		log.WithFields(log.Fields{
			"Width":  width,
			"Height": height,
		}).Warn("empty board, food placed at origin")
		return game.Point{}
	}
	return game.Point{
		X: rng.Intn(width),
		Y: rng.Intn(height),
	}
}
