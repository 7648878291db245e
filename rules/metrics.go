package rules

import "github.com/prometheus/client_golang/prometheus"

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "snake",
			Name:      "ticks_total",
			Help:      "Ticks advanced by the engine.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "snake",
			Name:      "food_eaten_total",
			Help:      "Food cells eaten by the snake.",
		},
	)
	gamesOver = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "snake",
			Name:      "games_over_total",
			Help:      "Games ended, by cause of death.",
		},
		[]string{"cause"},
	)
	stepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "arcade",
			Subsystem: "snake",
			Name:      "step_duration_seconds",
			Help:      "Time spent moving the snake and checking for collisions.",
		},
	)
)

func instrument() func() {
	t := prometheus.NewTimer(stepDuration)
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(ticksTotal, foodEaten, gamesOver, stepDuration)
}
