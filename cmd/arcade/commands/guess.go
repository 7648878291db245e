package commands

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pocketarcade/arcade/guess"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "plays the number guessing game",
	RunE: func(c *cobra.Command, args []string) error {
		g := guess.NewGame(rand.New(rand.NewSource(time.Now().UnixNano())))
		return playGuess(c.InOrStdin(), c.OutOrStdout(), g)
	},
}

// playGuess reads one guess per line until the input ends. A correct guess
// starts a new game.
func playGuess(in io.Reader, out io.Writer, g *guess.Game) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	fmt.Fprintln(w, "Guess the Number")
	fmt.Fprintf(w, "Try to guess the number between %d and %d.\n", guess.MinSecret, guess.MaxSecret)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(w, "> ")
		if err := w.Flush(); err != nil {
			return errors.Wrap(err, "unable to write prompt")
		}
		if !scanner.Scan() {
			break
		}

		input := strings.TrimRight(scanner.Text(), "\r")
		res := g.Check(input)
		fmt.Fprintln(w, res.Message)
		log.WithFields(log.Fields{
			"Outcome": res.Outcome,
		}).Debug("guess")

		if res.Outcome == guess.OutcomeCorrect {
			g.Reset()
			fmt.Fprintln(w, "New game!")
		}
	}
	fmt.Fprintln(w)
	return errors.Wrap(scanner.Err(), "unable to read guess")
}
