package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// feel of the games, the cobra flags default to them.
var (
	TickInterval = time.Duration(getEnvInt("TICK_INTERVAL_MS", 200)) * time.Millisecond
	CellSize     = getEnvInt("CELL_SIZE", 20)
	RedrawRate   = rate.Limit(getEnvInt("REDRAW_RPS", 30))
	RedrawBurst  = getEnvInt("REDRAW_BURST", 5)
	LogLevel     = getEnv("LOG_LEVEL", "info")
)

// ParseLogLevel converts a level name into a logrus level.
func ParseLogLevel(name string) (log.Level, error) {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return lvl, errors.Wrapf(err, "config: invalid log level %q", name)
	}
	return lvl, nil
}

func getEnv(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
