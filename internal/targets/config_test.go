package targets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crawlcheck.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
targets:
  default:
    image: registry.example.com/acme/crawler
  staging:
    image: registry.example.com/acme/crawler-staging
    version: rc1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Version != "1.0" {
		t.Fatalf("version = %q, want 1.0", cfg.Version)
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2", len(cfg.Targets))
	}
	if cfg.Targets["staging"].Version != "rc1" {
		t.Fatalf("staging version = %q, want rc1", cfg.Targets["staging"].Version)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "targets: [not a map")
	if _, err := Load(path); !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestTarget(t *testing.T) {
	cfg := &Config{Targets: map[string]Target{
		"default": {Image: "acme/crawler"},
		"broken":  {},
	}}

	if _, err := cfg.Target("default"); err != nil {
		t.Fatal(err)
	}

	if _, err := cfg.Target("missing"); !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("err = %v, want ErrUnknownTarget", err)
	}

	if _, err := cfg.Target("broken"); !errors.Is(err, ErrNoImage) {
		t.Fatalf("err = %v, want ErrNoImage", err)
	}
}

func TestImageRef(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		alias   string
		version string
		want    string
	}{
		{
			name: "explicit version wins",
			cfg: Config{
				Version: "1.0",
				Targets: map[string]Target{"default": {Image: "acme/crawler", Version: "2.0"}},
			},
			alias:   "default",
			version: "3.0",
			want:    "acme/crawler:3.0",
		},
		{
			name: "target version over config default",
			cfg: Config{
				Version: "1.0",
				Targets: map[string]Target{"default": {Image: "acme/crawler", Version: "2.0"}},
			},
			alias: "default",
			want:  "acme/crawler:2.0",
		},
		{
			name: "config default version",
			cfg: Config{
				Version: "1.0",
				Targets: map[string]Target{"default": {Image: "acme/crawler"}},
			},
			alias: "default",
			want:  "acme/crawler:1.0",
		},
		{
			name: "tag on the image definition",
			cfg: Config{
				Targets: map[string]Target{"default": {Image: "acme/crawler:pinned"}},
			},
			alias: "default",
			want:  "acme/crawler:pinned",
		},
		{
			name: "explicit version replaces image tag",
			cfg: Config{
				Targets: map[string]Target{"default": {Image: "acme/crawler:pinned"}},
			},
			alias:   "default",
			version: "3.0",
			want:    "acme/crawler:3.0",
		},
		{
			name: "falls back to latest",
			cfg: Config{
				Targets: map[string]Target{"default": {Image: "acme/crawler"}},
			},
			alias: "default",
			want:  "acme/crawler:latest",
		},
		{
			name: "registry with port is not a tag",
			cfg: Config{
				Targets: map[string]Target{"default": {Image: "localhost:5000/crawler"}},
			},
			alias: "default",
			want:  "localhost:5000/crawler:latest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.ImageRef(tt.alias, tt.version)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("ImageRef = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImageRefUnknownTarget(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.ImageRef("nope", ""); !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("err = %v, want ErrUnknownTarget", err)
	}
}

func TestListTargets(t *testing.T) {
	cfg := &Config{Targets: map[string]Target{
		"staging": {Image: "a"},
		"default": {Image: "b"},
		"prod":    {Image: "c"},
	}}

	got := cfg.ListTargets()
	want := []string{"default", "prod", "staging"}
	if len(got) != len(want) {
		t.Fatalf("ListTargets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListTargets = %v, want %v", got, want)
		}
	}
}
