package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/crawlcloud/crawlcheck/internal"
	"github.com/crawlcloud/crawlcheck/internal/cli"
)

// The entry point for the crawlcheck tool.
//
// Initializes logging and executes the root command. Any error aborts the
// process with a non-zero exit code and the failing check's message.
func main() {
	slog.SetDefault(slog.New(logger()))

	slog.Debug("build", "version", internal.VersionString())

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Creates the log handler seeded from build-time linker flags.
//
// The handler is reconfigured after flag parsing via cli.Execute.
func logger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: internal.Name,
		Level:  logLevel(),
	})
}

// Returns the log level derived from build-time linker flags.
func logLevel() log.Level {
	if internal.IsDebug() {
		return log.DebugLevel
	}
	if internal.IsQuiet() {
		return log.WarnLevel
	}
	return log.InfoLevel
}
