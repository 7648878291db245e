package rules

import "github.com/pocketarcade/arcade/game"

// checkForDeath looks at the snake with its updated coords and returns the
// cause of death, if any. Possible causes are wall collision and the head
// running into any segment after it.
func checkForDeath(width, height int, snake game.Snake) (string, bool) {
	if len(snake.Body) == 0 {
		return "", false
	}
	head := snake.Head()
	if deathByOutOfBounds(head, width, height) {
		return DeathCauseWallCollision, true
	}
	for _, b := range snake.Body[1:] {
		if deathByBodyCollision(head, b) {
			return DeathCauseSnakeSelfCollision, true
		}
	}
	return "", false
}

func deathByBodyCollision(head, body game.Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head game.Point, width, height int) bool {
	return (head.X < 0) || (head.X >= width) || (head.Y < 0) || (head.Y >= height)
}
