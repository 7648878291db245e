package guess

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func fixedGame(secret int) *Game {
	return &Game{secret: secret, rng: rand.New(rand.NewSource(1))}
}

func TestCheckInvalid(t *testing.T) {
	g := fixedGame(50)
	for _, input := range []string{"abc", "", " 30", "3.5", "30x"} {
		res := g.Check(input)
		require.Equal(t, OutcomeInvalid, res.Outcome, "input %q", input)
		require.Equal(t, MessageInvalid, res.Message)
		require.Equal(t, 50, g.Secret())
	}
}

func TestCheckHints(t *testing.T) {
	g := fixedGame(50)

	res := g.Check("30")
	require.Equal(t, OutcomeHigher, res.Outcome)
	require.Equal(t, MessageHigher, res.Message)

	res = g.Check("70")
	require.Equal(t, OutcomeLower, res.Outcome)
	require.Equal(t, MessageLower, res.Message)

	res = g.Check("50")
	require.Equal(t, OutcomeCorrect, res.Outcome)
	require.Contains(t, res.Message, "50")

	res = g.Check("+50")
	require.Equal(t, OutcomeCorrect, res.Outcome)
}

func TestParseGuess(t *testing.T) {
	n, err := ParseGuess("42")
	require.NoError(t, err)
	require.Equal(t, 42, n)

	_, err = ParseGuess("abc")
	require.Error(t, err)
	require.Equal(t, ErrInvalidNumber, errors.Cause(err))
}

func TestResetStaysInRange(t *testing.T) {
	g := NewGame(rand.New(rand.NewSource(7)))
	for i := 0; i < 500; i++ {
		g.Reset()
		require.True(t, g.Secret() >= MinSecret && g.Secret() <= MaxSecret, "secret %d", g.Secret())
	}
}
