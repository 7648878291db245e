package commands

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/pocketarcade/arcade/config"
	"github.com/pocketarcade/arcade/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "arcade",
	Short:             "arcade runs a couple of small terminal games",
	Version:           version.Version,
	PersistentPreRunE: setupLogging,
}

var (
	logLevel = config.LogLevel
	logFile  string
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")

	rootCmd.AddCommand(snakeCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(guessCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging(*cobra.Command, []string) error {
	lvl, err := config.ParseLogLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrap(err, "unable to open log file")
	}
	log.SetOutput(f)
	return nil
}

// quietLogs keeps log lines off the terminal while a full screen UI owns it,
// unless they already go to a file.
func quietLogs() func() {
	if logFile != "" {
		return func() {}
	}
	prev := log.StandardLogger().Out
	log.SetOutput(ioutil.Discard)
	return func() { log.SetOutput(prev) }
}
