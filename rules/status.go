package rules

// GameState is the state of a single snake session.
type GameState string

const (
	// GameStatePlaying represents a game the timer is still driving
	GameStatePlaying GameState = "playing"
	// GameStateOver represents a game that ended in a collision
	GameStateOver GameState = "game-over"
)
