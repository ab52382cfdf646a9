package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "crawlers", "acme")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(root, configName)
	if err := os.WriteFile(cfgPath, []byte("targets: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Chdir(nested)

	got, err := FindConfig()
	if err != nil {
		t.Fatal(err)
	}
	// Resolve symlinks; t.TempDir may sit behind one on some platforms.
	want, _ := filepath.EvalSymlinks(cfgPath)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != want {
		t.Fatalf("FindConfig = %q, want %q", got, want)
	}
}

func TestFindConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	xdg.Reload()

	t.Chdir(t.TempDir())

	if _, err := FindConfig(); !errors.Is(err, ErrNoConfig) {
		t.Fatalf("err = %v, want ErrNoConfig", err)
	}
}

func TestGlobalConfig(t *testing.T) {
	got := GlobalConfig()
	if !strings.HasSuffix(got, filepath.Join(toolName, configName)) {
		t.Fatalf("GlobalConfig = %q, want .../%s/%s", got, toolName, configName)
	}
}
