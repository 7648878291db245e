package commands

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/pocketarcade/arcade/config"
	"github.com/pocketarcade/arcade/game"
	"github.com/pocketarcade/arcade/rules"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	simTicks        int
	simSeed         int64
	simScreenWidth  int
	simScreenHeight int
	simTurns        string
)

func init() {
	simulateCmd.Flags().IntVar(&simTicks, "ticks", 20, "number of ticks to run")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "seed for food placement")
	simulateCmd.Flags().IntVar(&simScreenWidth, "screen-width", 400, "screen width in units")
	simulateCmd.Flags().IntVar(&simScreenHeight, "screen-height", 400, "screen height in units")
	simulateCmd.Flags().StringVar(&simTurns, "turns", "", "direction changes as tick:direction, comma separated")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "runs snake without a terminal and dumps the final state",
	RunE: func(c *cobra.Command, args []string) error {
		turns, err := parseTurns(simTurns)
		if err != nil {
			return err
		}
		width, height := rules.BoardFromScreen(simScreenWidth, simScreenHeight, config.CellSize)
		engine := rules.NewEngine(rules.WithRand(rand.New(rand.NewSource(simSeed))))
		s := simulate(engine, width, height, simTicks, turns)
		spew.Fdump(c.OutOrStdout(), s)
		return nil
	},
}

// parseTurns parses "3:down,7:left" into a tick to direction map.
func parseTurns(spec string) (map[int]game.Direction, error) {
	turns := map[int]game.Direction{}
	if strings.TrimSpace(spec) == "" {
		return turns, nil
	}
	for _, part := range strings.Split(spec, ",") {
		fields := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(fields) != 2 {
			return nil, errors.Errorf("turn %q is not tick:direction", part)
		}
		tick, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "turn %q has a bad tick", part)
		}
		d := game.Direction(strings.ToLower(fields[1]))
		if !d.Valid() {
			return nil, errors.Errorf("turn %q has unknown direction %q", part, fields[1])
		}
		turns[tick] = d
	}
	return turns, nil
}

// simulate steps the engine like the timer would, applying each turn just
// before its tick. It stops early once the game is over.
func simulate(engine *rules.Engine, width, height, ticks int, turns map[int]game.Direction) rules.Snapshot {
	for i := 0; i < ticks; i++ {
		if d, ok := turns[i]; ok {
			engine.SetDirection(d)
		}
		if engine.Step(width, height) {
			break
		}
	}
	s := engine.Snapshot()
	log.WithFields(log.Fields{
		"GameID": s.ID,
		"Turn":   s.Turn,
		"State":  s.State,
		"Width":  width,
		"Height": height,
	}).Info("simulation finished")
	return s
}
