package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "billiards",
	Short: "Headless 2D billiards table with a browser viewer",
}

var logLevel string

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log verbosity level (overrides LOG_LEVEL)")
	rootCmd.AddCommand(serveCmd(), rackCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}
