package runtime

import (
	"context"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

const (

	// Default containerd socket address.
	DefaultAddress = "/run/containerd/containerd.sock"

	// Default containerd namespace for probe containers.
	DefaultNamespace = "crawlcheck"

	// Snapshotter used for probe container filesystems.
	snapshotter = "overlayfs"

	// OCI runtime shim for running probe containers.
	ociRuntime = "io.containerd.runc.v2"
)

// Metadata of a locally available image.
type ImageInfo struct {
	Name       string             // Image reference the record is stored under.
	Descriptor ocispec.Descriptor // OCI descriptor of the image target (digest, size, media type).
}

// The container runtime primitives consumed by the contract checks.
//
// Implementations must report a missing image from [Runtime.InspectImage] as
// an error matching [ErrImageNotFound], so callers can distinguish "image not
// built yet" from infrastructure failures without depending on a particular
// runtime client's error types. All other errors are infrastructure errors
// and pass through unmodified.
type Runtime interface {

	// Looks up image metadata without creating a container.
	InspectImage(ctx context.Context, ref string) (*ImageInfo, error)

	// Creates a container from the image with the given command and
	// returns its identifier. The container is not started.
	CreateContainer(ctx context.Context, image string, command []string) (string, error)

	// Starts a previously created container.
	StartContainer(ctx context.Context, id string) error

	// Blocks until the container's process terminates and returns its
	// exit status.
	WaitContainer(ctx context.Context, id string) (int, error)

	// Returns the captured output of a terminated container. Standard
	// output is always included; standard error only when withStderr is
	// set.
	ContainerLogs(ctx context.Context, id string, withStderr bool) (string, error)

	// Removes the container and its resources. Removing an already
	// removed container is not an error.
	RemoveContainer(ctx context.Context, id string) error
}
