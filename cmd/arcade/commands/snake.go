package commands

import (
	"context"
	"math/rand"
	"time"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"github.com/pocketarcade/arcade/config"
	"github.com/pocketarcade/arcade/rules"
	"github.com/pocketarcade/arcade/worker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	boardWidth   int
	boardHeight  int
	tickInterval = config.TickInterval
)

func init() {
	snakeCmd.Flags().IntVar(&boardWidth, "width", 30, "board width in cells, 0 fills the terminal")
	snakeCmd.Flags().IntVar(&boardHeight, "height", 20, "board height in cells, 0 fills the terminal")
	snakeCmd.Flags().DurationVar(&tickInterval, "interval", tickInterval, "time between snake moves")
	snakeCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	snakeCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var snakeCmd = &cobra.Command{
	Use:    "snake",
	Short:  "plays snake in the terminal",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	RunE: func(c *cobra.Command, args []string) error {
		return playSnake()
	},
}

func playSnake() error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to init terminal")
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	restoreLogs := quietLogs()
	defer restoreLogs()

	board := func() (int, int) { return terminalBoard(boardWidth, boardHeight) }
	sc := newScreen(board, render, rate.NewLimiter(config.RedrawRate, config.RedrawBurst))

	engine := rules.NewEngine(rules.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	loop := worker.New(engine, board, tickInterval, sc.Show)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx) }()

	err := handleEvents(loop, sc)
	cancel()
	if runErr := <-errc; runErr != nil && runErr != context.Canceled {
		log.WithError(runErr).Error("snake loop failed")
	}
	if s, ok := sc.Last(); ok {
		log.WithFields(log.Fields{
			"GameID": s.ID,
			"Turn":   s.Turn,
			"Score":  s.Score(),
		}).Info("snake finished")
	}
	return err
}

func handleEvents(loop *worker.Loop, sc *screen) error {
	drag := &dragTracker{}
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventError:
			return errors.Wrap(ev.Err, "terminal event")
		case termbox.EventResize:
			sc.Redraw()
		case termbox.EventMouse:
			if d, ok := drag.Mouse(ev); ok {
				if err := loop.Turn(d); err != nil {
					return err
				}
			}
		case termbox.EventKey:
			act, d := keyAction(ev)
			switch act {
			case actionQuit:
				return nil
			case actionTurn:
				if err := loop.Turn(d); err != nil {
					return err
				}
			case actionRestart:
				if err := loop.Restart(); err != nil {
					return err
				}
			}
		}
	}
}
