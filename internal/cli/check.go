package cli

import (
	"context"
	"log/slog"

	"github.com/crawlcloud/crawlcheck/internal/check"
	"github.com/crawlcloud/crawlcheck/internal/runtime"
)

// Represents the 'crawlcheck check' command.
type CheckCmd struct {
	Target         string `arg:"" optional:"" default:"default" help:"Target alias from the config file."`
	ListTargets    bool   `short:"l" help:"List available targets instead of running checks."`
	ReleaseVersion string `name:"version" help:"Release version to check, overriding the config default." placeholder:"VERSION"`
}

// Executes the check command.
//
// Resolves the target's image reference from the config file, connects to
// the container runtime, and runs the contract check sequence. The first
// failing check aborts the run and its message becomes the process's error
// output.
func (c *CheckCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if c.ListTargets {
		return printTargets(cfg)
	}

	image, err := cfg.ImageRef(c.Target, c.ReleaseVersion)
	if err != nil {
		return err
	}

	rt, err := runtime.New(RootCmd.Address, RootCmd.Namespace)
	if err != nil {
		return err
	}
	defer rt.Close()

	slog.Info("checking image", "target", c.Target, "image", image)

	if err := check.Run(ctx, rt, image); err != nil {
		return err
	}

	slog.Info("image satisfies the platform contract", "image", image)
	return nil
}
