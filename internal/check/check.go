package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crawlcloud/crawlcheck/internal/runtime"
)

// Remediation shared by the entrypoint and companion package checks: the
// entrypoints are shipped by the companion package, so all three point at
// the same dependency.
const companionWarning = "add scrapinghub-entrypoint-scrapy (>= 0.7.0) to your " +
	"requirements.txt or Dockerfile so the image can run on the platform"

// A single contract check: a pure function of the image reference and the
// runtime handle.
type Check struct {
	Name string
	run  func(ctx context.Context, rt runtime.Runtime, image string) error
}

// Returns the contract checks in execution order.
//
// The existence check runs first so a missing image fails before any
// container is created for the remaining checks.
func Checks() []Check {
	return []Check{
		{Name: "image-exists", run: checkImageExists},
		{Name: "start-crawl-entrypoint", run: checkStartCrawlEntrypoint},
		{Name: "list-spiders-entrypoint", run: checkListSpidersEntrypoint},
		{Name: "companion-package", run: checkCompanionPackage},
	}
}

// Runs the full check sequence against the image.
//
// The sequence is an all-or-nothing gate: the first failing check aborts the
// remainder and its error propagates unmodified. No partial result is
// retained.
func Run(ctx context.Context, rt runtime.Runtime, image string) error {
	for _, c := range Checks() {
		slog.Debug("running check", "check", c.Name, "image", image)
		if err := c.run(ctx, rt, image); err != nil {
			return err
		}
	}
	return nil
}

// Verifies that the image exists in the local image store.
func checkImageExists(ctx context.Context, rt runtime.Runtime, image string) error {
	info, err := rt.InspectImage(ctx, image)
	if err != nil {
		if errors.Is(err, runtime.ErrImageNotFound) {
			slog.Debug(err.Error())
			return fmt.Errorf("%w: the image %q doesn't exist yet, run a build first", ErrContract, image)
		}
		return err
	}

	slog.Debug("image found",
		"image", info.Name,
		"digest", info.Descriptor.Digest,
		"size", info.Descriptor.Size,
	)
	return nil
}

// Verifies that the image ships the start-crawl entrypoint.
func checkStartCrawlEntrypoint(ctx context.Context, rt runtime.Runtime, image string) error {
	return entrypointProbe(ctx, rt, image, "start-crawl",
		"start-crawl command not found in the image; "+companionWarning)
}

// Verifies that the image ships the list-spiders entrypoint.
func checkListSpidersEntrypoint(ctx context.Context, rt runtime.Runtime, image string) error {
	return entrypointProbe(ctx, rt, image, "list-spiders",
		"list-spiders command not found in the image; "+
			"upgrade scrapinghub-entrypoint-scrapy to >= 0.7.0")
}

// Probes for an executable on the image's PATH.
//
// The entrypoint is missing when the probe exits non-zero or resolves to
// nothing.
func entrypointProbe(ctx context.Context, rt runtime.Runtime, image, entrypoint, remedy string) error {
	result, err := runProbe(ctx, rt, image, []string{"which", entrypoint})
	if err != nil {
		return err
	}
	if !result.OK() {
		return fmt.Errorf("%w: %s", ErrContract, remedy)
	}
	return nil
}

// Verifies that the companion package is installed alongside the base
// framework package.
func checkCompanionPackage(ctx context.Context, rt runtime.Runtime, image string) error {
	g := guardedProbe{
		host:      []string{"pip", "show", "Scrapy"},
		companion: []string{"pip", "show", "scrapinghub-entrypoint-scrapy"},
		failure:   companionWarning,
	}
	return g.run(ctx, rt, image)
}

// A two-stage guarded probe.
//
// The companion probe runs only when the host probe succeeds with output;
// validating a companion package is meaningless when its host package is not
// installed. The guard is on the host probe's outcome, never the
// companion's.
type guardedProbe struct {
	host      []string // Probe that must succeed for the companion probe to apply.
	companion []string // Probe whose failure violates the contract.
	failure   string   // Remediation text when the companion probe fails.
}

// Runs the host probe and, when it applies, the companion probe.
func (g guardedProbe) run(ctx context.Context, rt runtime.Runtime, image string) error {
	host, err := runProbe(ctx, rt, image, g.host)
	if err != nil {
		return err
	}
	if !host.OK() {
		slog.Debug("host package absent, skipping companion probe",
			"host", g.host, "status", host.Status)
		return nil
	}

	companion, err := runProbe(ctx, rt, image, g.companion)
	if err != nil {
		return err
	}
	if !companion.OK() {
		return fmt.Errorf("%w: %s", ErrContract, g.failure)
	}
	return nil
}
