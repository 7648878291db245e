package worker

import (
	"context"
	"testing"
	"time"

	"github.com/pocketarcade/arcade/game"
	"github.com/pocketarcade/arcade/rules"
	"github.com/stretchr/testify/require"
)

type harness struct {
	loop   *Loop
	snaps  chan rules.Snapshot
	cancel context.CancelFunc
	errc   chan error
}

func startLoop(t *testing.T, width, height int) *harness {
	h := &harness{
		snaps: make(chan rules.Snapshot, 256),
		errc:  make(chan error, 1),
	}
	board := func() (int, int) { return width, height }
	h.loop = New(rules.NewEngine(), board, time.Millisecond, func(s rules.Snapshot) {
		select {
		case h.snaps <- s:
		default:
		}
	})
	var ctx context.Context
	ctx, h.cancel = context.WithCancel(context.Background())
	go func() { h.errc <- h.loop.Run(ctx) }()
	return h
}

func (h *harness) waitFor(t *testing.T, match func(rules.Snapshot) bool) rules.Snapshot {
	timeout := time.After(2 * time.Second)
	for {
		select {
		case s := <-h.snaps:
			if match(s) {
				return s
			}
		case <-timeout:
			t.Fatal("timed out waiting for snapshot")
		}
	}
}

func isOver(s rules.Snapshot) bool { return s.State == rules.GameStateOver }

func TestLoopStopsOnGameOver(t *testing.T) {
	h := startLoop(t, 12, 20)
	defer h.cancel()

	s := h.waitFor(t, isOver)
	require.Equal(t, game.Point{X: 12, Y: 10}, s.Snake[0])
	require.Equal(t, int64(2), s.Turn)
	require.Equal(t, rules.DeathCauseWallCollision, s.Cause)

	time.Sleep(20 * time.Millisecond)
	select {
	case s := <-h.snaps:
		t.Fatalf("timer kept ticking after game over, turn %d", s.Turn)
	default:
	}
}

func TestLoopRestartRearmsTimer(t *testing.T) {
	h := startLoop(t, 12, 20)
	defer h.cancel()

	h.waitFor(t, isOver)
	require.NoError(t, h.loop.Restart())

	s := h.waitFor(t, func(s rules.Snapshot) bool { return s.State == rules.GameStatePlaying })
	require.Equal(t, int64(0), s.Turn)
	require.Equal(t, []game.Point{rules.InitialHead}, s.Snake)

	s = h.waitFor(t, isOver)
	require.Equal(t, int64(2), s.Turn)
}

func TestLoopTurn(t *testing.T) {
	h := startLoop(t, 40, 12)
	defer h.cancel()

	require.NoError(t, h.loop.Turn(game.Down))
	s := h.waitFor(t, isOver)
	require.Equal(t, game.Down, s.Direction)
	require.Equal(t, 12, s.Snake[0].Y)
}

func TestLoopCommandsAfterExit(t *testing.T) {
	h := startLoop(t, 40, 40)
	h.cancel()
	require.Equal(t, context.Canceled, <-h.errc)
	require.Equal(t, ErrStopped, h.loop.Turn(game.Up))
	require.Equal(t, ErrStopped, h.loop.Restart())
}
