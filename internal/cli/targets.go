package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crawlcloud/crawlcheck/internal/paths"
	"github.com/crawlcloud/crawlcheck/internal/targets"
)

// Represents the 'crawlcheck targets' command.
type TargetsCmd struct{}

// Executes the targets command.
func (c *TargetsCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return printTargets(cfg)
}

// Loads the project config from the --config flag or the search path.
func loadConfig() (*targets.Config, error) {
	path := RootCmd.Config
	if path == "" {
		var err error
		path, err = paths.FindConfig()
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("loading config", "path", path)
	return targets.Load(path)
}

// Prints the configured target aliases, one per line.
func printTargets(cfg *targets.Config) error {
	for _, alias := range cfg.ListTargets() {
		fmt.Println(alias)
	}
	return nil
}
