// Package runtime provides the container runtime boundary for image probes.
//
// The [Runtime] interface exposes the primitives the contract checks need:
// image inspection plus create/start/wait/logs/remove for one-shot probe
// containers. A missing image is surfaced as [ErrImageNotFound] so callers
// never depend on a specific runtime client's error types.
//
// [Client] implements the interface against a containerd daemon. Each probe
// container runs its command as the primary process with stdout and stderr
// captured into buffers, and is removed together with its snapshot once the
// caller has read the outcome.
//
// Example usage:
//
//	rt, err := runtime.New(runtime.DefaultAddress, runtime.DefaultNamespace)
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//
//	id, err := rt.CreateContainer(ctx, "registry/crawler:1.0", []string{"which", "start-crawl"})
//	if err != nil {
//	    return err
//	}
//	defer rt.RemoveContainer(ctx, id)
package runtime
