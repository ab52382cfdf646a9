package check

import (
	"context"
	"log/slog"

	"github.com/crawlcloud/crawlcheck/internal/runtime"
)

// Outcome of a single probe command.
type ProbeResult struct {
	Status int    // Exit status of the probe command.
	Output string // Captured output text.
}

// Whether the probe exited cleanly and produced output.
func (r ProbeResult) OK() bool {
	return r.Status == 0 && r.Output != ""
}

// Executes a command inside a disposable container of the image and captures
// its outcome.
//
// The container is removed on every exit path once it has been created,
// whether the probe succeeded, the command failed, or the runtime errored
// mid-operation. Standard error is captured only when the command exits
// non-zero, so a silently succeeding probe is not polluted by startup noise
// while a failing one still surfaces its diagnostics.
//
// A non-zero exit status is not an error; interpreting the result is the
// caller's responsibility.
func runProbe(ctx context.Context, rt runtime.Runtime, image string, command []string) (result ProbeResult, err error) {
	var id string
	id, err = rt.CreateContainer(ctx, image, command)
	if err != nil {
		return ProbeResult{}, err
	}
	defer func() {
		removeErr := rt.RemoveContainer(ctx, id)
		if err == nil {
			err = removeErr
		}
	}()

	if err = rt.StartContainer(ctx, id); err != nil {
		return ProbeResult{}, err
	}

	var status int
	status, err = rt.WaitContainer(ctx, id)
	if err != nil {
		return ProbeResult{}, err
	}

	var logs string
	logs, err = rt.ContainerLogs(ctx, id, status != 0)
	if err != nil {
		return ProbeResult{}, err
	}

	slog.Debug("probe finished", "command", command, "status", status, "output", logs)

	return ProbeResult{Status: status, Output: logs}, nil
}
