package runtime

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	goruntime "runtime"
	"sync/atomic"
	"syscall"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/containerd/containerd/v2/pkg/cio"
	"github.com/containerd/containerd/v2/pkg/oci"
	"github.com/containerd/errdefs"
	"github.com/containerd/platforms"
	"github.com/opencontainers/go-digest"
	specs "github.com/opencontainers/runtime-spec/specs-go"
)

// Sequence counter for generating unique probe container identifiers.
var probeSeq uint64

var _ Runtime = (*Client)(nil)

// Containerd-backed implementation of [Runtime].
//
// Containers created through the client are one-shot: the probe command is
// the container's primary process, its stdout and stderr are captured into
// buffers at creation time, and the container is expected to be removed by
// the caller once its outcome has been read.
type Client struct {
	client *containerd.Client // Containerd client for managing containers and images.
	probes map[string]*probe  // Live probe containers keyed by identifier.
}

// State of a single probe container between creation and removal.
type probe struct {
	container containerd.Container
	task      containerd.Task
	exitC     <-chan containerd.ExitStatus // Exit channel, armed by StartContainer.
	stdout    bytes.Buffer
	stderr    bytes.Buffer
}

// Creates a client connected to the containerd socket at the given address.
//
// The namespace scopes all containerd operations. The client must be closed
// when no longer needed.
func New(address, namespace string) (*Client, error) {
	client, err := containerd.New(address, containerd.WithDefaultNamespace(namespace))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	return &Client{
		client: client,
		probes: make(map[string]*probe),
	}, nil
}

// Closes the containerd client connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Looks up image metadata in the containerd image store.
//
// A missing image is reported as [ErrImageNotFound]; any other failure is
// an infrastructure error.
func (c *Client) InspectImage(ctx context.Context, ref string) (*ImageInfo, error) {
	img, err := c.client.ImageService().Get(ctx, ref)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, ref)
		}
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return &ImageInfo{
		Name:       img.Name,
		Descriptor: img.Target,
	}, nil
}

// Creates a one-shot container running the given command.
//
// The image is resolved for the host platform and unpacked into the
// snapshotter on demand. The container's stdout and stderr are wired into
// in-memory buffers that [Client.ContainerLogs] reads after termination.
func (c *Client) CreateContainer(ctx context.Context, image string, command []string) (string, error) {
	platform := defaultPlatform()

	img, err := c.resolveImage(ctx, image, platform)
	if err != nil {
		return "", err
	}

	if err := c.ensureUnpacked(ctx, img); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	id := nextProbeID(image)
	p := &probe{}

	ctr, err := c.client.NewContainer(ctx, id,
		containerd.WithImage(img),
		containerd.WithSnapshotter(snapshotter),
		containerd.WithNewSnapshot(id, img),
		containerd.WithRuntime(ociRuntime, nil),
		containerd.WithNewSpec(
			oci.WithDefaultSpecForPlatform(platform),
			oci.WithImageConfig(img),
			oci.WithHostNamespace(specs.NetworkNamespace),
			oci.WithHostResolvconf,
			oci.WithProcessArgs(command...),
		),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	p.container = ctr

	task, err := ctr.NewTask(ctx, cio.NewCreator(
		cio.WithStreams(nil, &p.stdout, &p.stderr),
	))
	if err != nil {
		ctr.Delete(ctx, containerd.WithSnapshotCleanup)
		return "", fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	p.task = task

	c.probes[id] = p
	slog.Debug("container created", "id", id, "image", image, "command", command)

	return id, nil
}

// Starts a previously created probe container.
//
// The exit channel is armed before the task starts so the termination event
// cannot be missed by a subsequent [Client.WaitContainer].
func (c *Client) StartContainer(ctx context.Context, id string) error {
	p, err := c.probe(id)
	if err != nil {
		return err
	}

	exitC, err := p.task.Wait(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	p.exitC = exitC

	if err := p.task.Start(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return nil
}

// Blocks until the probe container's process terminates and returns its
// exit status. No timeout is applied; the caller blocks for as long as the
// probe command runs.
func (c *Client) WaitContainer(ctx context.Context, id string) (int, error) {
	p, err := c.probe(id)
	if err != nil {
		return 0, err
	}
	if p.exitC == nil {
		return 0, fmt.Errorf("%w: container %q was not started", ErrRuntime, id)
	}

	status := <-p.exitC
	code, _, err := status.Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return int(code), nil
}

// Returns the captured output of a terminated probe container.
//
// Standard output is always included. Standard error is appended only when
// withStderr is set.
func (c *Client) ContainerLogs(ctx context.Context, id string, withStderr bool) (string, error) {
	p, err := c.probe(id)
	if err != nil {
		return "", err
	}

	logs := p.stdout.String()
	if withStderr {
		logs += p.stderr.String()
	}
	return logs, nil
}

// Removes the probe container and its resources.
//
// The task is deleted with its process killed in case it is still running,
// then the container and its snapshot are removed. Not-found conditions are
// tolerated so removal is safe on every exit path.
func (c *Client) RemoveContainer(ctx context.Context, id string) error {
	p, ok := c.probes[id]
	if !ok {
		return nil
	}
	delete(c.probes, id)

	if p.task != nil {
		p.task.Kill(ctx, syscall.SIGKILL)
		if _, err := p.task.Delete(ctx, containerd.WithProcessKill); err != nil && !errdefs.IsNotFound(err) {
			return fmt.Errorf("%w: %w", ErrRuntime, err)
		}
	}

	if err := p.container.Delete(ctx, containerd.WithSnapshotCleanup); err != nil && !errdefs.IsNotFound(err) {
		return fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	slog.Debug("container removed", "id", id)
	return nil
}

// Returns the live probe state for an identifier.
func (c *Client) probe(id string) (*probe, error) {
	p, ok := c.probes[id]
	if !ok {
		return nil, fmt.Errorf("%w: unknown container %q", ErrRuntime, id)
	}
	return p, nil
}

// Looks up an image and selects the manifest for the given platform.
//
// Multi-platform images contain manifests for multiple architectures; the
// probe always targets the host.
func (c *Client) resolveImage(ctx context.Context, ref, platform string) (containerd.Image, error) {
	p, err := platforms.Parse(platform)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	img, err := c.client.ImageService().Get(ctx, ref)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, ref)
		}
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return containerd.NewImageWithPlatform(c.client, img, platforms.Only(p)), nil
}

// Unpacks the image layers into the snapshotter if not already present.
func (c *Client) ensureUnpacked(ctx context.Context, img containerd.Image) error {
	unpacked, err := img.IsUnpacked(ctx, snapshotter)
	if err != nil {
		return err
	}
	if unpacked {
		return nil
	}
	return img.Unpack(ctx, snapshotter)
}

// Returns a unique probe container identifier for an image reference.
//
// The image reference is hashed so the identifier is always valid for
// containerd regardless of which characters the reference contains.
func nextProbeID(image string) string {
	h := digest.FromString(image).Encoded()
	return fmt.Sprintf("crawlcheck-%s-%d", h[:12], atomic.AddUint64(&probeSeq, 1))
}

// Returns the OCI platform of the host.
func defaultPlatform() string {
	return "linux/" + goruntime.GOARCH
}
