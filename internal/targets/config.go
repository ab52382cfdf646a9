package targets

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Version used when neither the CLI, the target, nor the config file names
// a release version.
const DefaultVersion = "latest"

// A single deployable target: the image it is built into and an optional
// per-target release version.
type Target struct {
	Image   string `yaml:"image"`
	Version string `yaml:"version,omitempty"`
}

// Project configuration mapping target aliases to image definitions.
type Config struct {
	Version string            `yaml:"version,omitempty"` // Default release version for all targets.
	Targets map[string]Target `yaml:"targets"`
}

// Loads the project configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	return &cfg, nil
}

// Returns the target definition for an alias.
//
// An alias that is not present in the config fails with [ErrUnknownTarget];
// a target defined without an image fails with [ErrNoImage].
func (c *Config) Target(alias string) (Target, error) {
	t, ok := c.Targets[alias]
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, alias)
	}
	if t.Image == "" {
		return Target{}, fmt.Errorf("%w: %q", ErrNoImage, alias)
	}
	return t, nil
}

// Resolves the fully qualified image reference for a target.
//
// An explicitly supplied version takes precedence, then the target's own
// version, then the config-level default, then a tag already present on the
// image definition, and finally [DefaultVersion].
func (c *Config) ImageRef(alias, version string) (string, error) {
	t, err := c.Target(alias)
	if err != nil {
		return "", err
	}

	name, tag := splitRef(t.Image)
	for _, v := range []string{version, t.Version, c.Version, tag} {
		if v != "" {
			return name + ":" + v, nil
		}
	}
	return name + ":" + DefaultVersion, nil
}

// Returns all configured target aliases in sorted order.
func (c *Config) ListTargets() []string {
	return slices.Sorted(maps.Keys(c.Targets))
}

// Splits an image definition into its name and an optional tag.
//
// Only a colon after the last path segment counts as a tag separator, so
// registry addresses with ports (e.g. "localhost:5000/crawler") are not
// mistaken for tagged references.
func splitRef(image string) (name, tag string) {
	slash := strings.LastIndex(image, "/")
	if colon := strings.LastIndex(image, ":"); colon > slash {
		return image[:colon], image[colon+1:]
	}
	return image, ""
}
