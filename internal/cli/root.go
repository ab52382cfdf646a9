package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/crawlcloud/crawlcheck/internal"
	"github.com/crawlcloud/crawlcheck/internal/runtime"
)

// Represents the root command for the crawlcheck tool.
var RootCmd struct {
	Quiet     bool   `short:"q" help:"Suppress informational output."`
	Verbose   bool   `short:"v" help:"Enable verbose output."`
	Debug     bool   `short:"d" help:"Enable debug output (logs probe commands and their results)."`
	Config    string `short:"c" help:"Path to the crawlcheck.yml config file." placeholder:"PATH"`
	Address   string `help:"Containerd socket address." default:"${address}" placeholder:"PATH"`
	Namespace string `help:"Containerd namespace for probe containers." default:"${namespace}"`

	Check   CheckCmd   `cmd:"" default:"withargs" help:"Check a built image against the platform contract."`
	Targets TargetsCmd `cmd:"" help:"List the targets defined in the config file."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Validates that a built container image satisfies the crawl platform's runtime contract before deployment."),
		kong.UsageOnError(),
		kong.Vars{
			"version":   internal.VersionString(),
			"address":   runtime.DefaultAddress,
			"namespace": runtime.DefaultNamespace,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	handler, ok := slog.Default().Handler().(*log.Logger)
	if !ok {
		return // Not the expected handler, nothing to configure
	}

	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	if debug {
		handler.SetLevel(log.DebugLevel)
	} else if quiet {
		handler.SetLevel(log.WarnLevel)
	} else {
		handler.SetLevel(log.InfoLevel)
	}

	handler.SetReportTimestamp(verbose)
}
