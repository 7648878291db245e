// Package guess is the number guessing game: a secret between 1 and 100 and
// a hint after every guess.
package guess

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// MinSecret is the lowest number the secret can be.
	MinSecret = 1
	// MaxSecret is the highest number the secret can be.
	MaxSecret = 100

	// MessageInvalid is shown when the guess is not a whole number.
	MessageInvalid = "Please enter a valid number."
	// MessageHigher is shown when the guess is below the secret.
	MessageHigher = "Try a higher number."
	// MessageLower is shown when the guess is above the secret.
	MessageLower = "Try a lower number."
)

// ErrInvalidNumber is returned when a guess does not parse as an integer.
var ErrInvalidNumber = errors.New("guess: invalid number")

// Outcome classifies a guess relative to the secret.
type Outcome string

const (
	OutcomeInvalid Outcome = "invalid"
	OutcomeHigher  Outcome = "higher"
	OutcomeLower   Outcome = "lower"
	OutcomeCorrect Outcome = "correct"
)

// Result is the outcome of a guess along with the message for the player.
type Result struct {
	Outcome Outcome
	Message string
}

// Game holds the secret number.
type Game struct {
	secret int
	rng    *rand.Rand
}

// NewGame starts a game with a secret drawn from rng.
func NewGame(rng *rand.Rand) *Game {
	g := &Game{rng: rng}
	g.Reset()
	return g
}

// Reset draws a new secret.
func (g *Game) Reset() {
	g.secret = MinSecret + g.rng.Intn(MaxSecret-MinSecret+1)
}

// Secret returns the number to guess.
func (g *Game) Secret() int { return g.secret }

// ParseGuess parses the player input as a whole number.
func ParseGuess(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "parse %q", input)
	}
	return n, nil
}

// Check compares a guess against the secret. Invalid input leaves the
// secret as it is.
func (g *Game) Check(input string) Result {
	n, err := ParseGuess(input)
	if errors.Cause(err) == ErrInvalidNumber {
		return Result{Outcome: OutcomeInvalid, Message: MessageInvalid}
	}

	switch {
	case n == g.secret:
		return Result{
			Outcome: OutcomeCorrect,
			Message: fmt.Sprintf("Congratulations! You guessed the number %d.", g.secret),
		}
	case n < g.secret:
		return Result{Outcome: OutcomeHigher, Message: MessageHigher}
	default:
		return Result{Outcome: OutcomeLower, Message: MessageLower}
	}
}
