package swap

import (
	"os"
	"path/filepath"
	"testing"

	cerrors "github.com/conswap/conswap/internal/errors"
	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/meta"
	"github.com/conswap/conswap/internal/registry"
	"github.com/conswap/conswap/internal/store"
)

func newGroup(t *testing.T, dest string) *registry.Group {
	t.Helper()

	r := registry.New(layout.NewPaths(t.TempDir()))
	group, err := r.Create("neovim", dest, "")
	if err != nil {
		t.Fatal(err)
	}
	return group
}

func installConfig(t *testing.T, group *registry.Group, name string, files map[string]string) {
	t.Helper()

	src := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatal(err)
	}
	for fname, content := range files {
		path := filepath.Join(src, fname)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	st := store.New(group, nil)
	if err := st.Install(name, store.Source{Kind: store.SourceLocal, Location: src}); err != nil {
		t.Fatal(err)
	}
}

func TestSwap(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dest", "nvim")
	group := newGroup(t, dest)
	installConfig(t, group, "minimal", map[string]string{"init.lua": "-- minimal"})
	installConfig(t, group, "full", map[string]string{"init.lua": "-- full", "lua/plugins.lua": "-- plugins"})

	if err := Swap(group, "minimal"); err != nil {
		t.Fatalf("Swap failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "init.lua"))
	if err != nil {
		t.Fatalf("destination not materialized: %v", err)
	}
	if string(data) != "-- minimal" {
		t.Errorf("destination content = %q", data)
	}
	if group.Desc.Active != "minimal" {
		t.Errorf("active = %q, want minimal", group.Desc.Active)
	}

	// Swapping again fully replaces the destination: files unique to the
	// old config must not survive.
	if err := Swap(group, "full"); err != nil {
		t.Fatalf("second Swap failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "lua", "plugins.lua")); err != nil {
		t.Errorf("new config file missing: %v", err)
	}
	data, _ = os.ReadFile(filepath.Join(dest, "init.lua"))
	if string(data) != "-- full" {
		t.Errorf("destination content = %q after second swap", data)
	}
	if group.Desc.Active != "full" {
		t.Errorf("active = %q, want full", group.Desc.Active)
	}

	// The stored copy is a copy, not a move.
	storePath, _ := layout.StorePath(group.Dir, "full")
	if _, err := os.Stat(filepath.Join(storePath, "init.lua")); err != nil {
		t.Errorf("stored copy missing after swap: %v", err)
	}
}

func TestSwap_UnconfiguredDestination(t *testing.T) {
	group := newGroup(t, "")
	installConfig(t, group, "minimal", map[string]string{"f": "x"})

	if err := Swap(group, "minimal"); err == nil {
		t.Error("expected error for unset destination path")
	}
	if group.Desc.Active != "" {
		t.Errorf("active = %q after failed swap", group.Desc.Active)
	}
}

func TestSwap_ConfigNotFound(t *testing.T) {
	group := newGroup(t, filepath.Join(t.TempDir(), "dest"))

	err := Swap(group, "missing")
	if !cerrors.HasCode(err, cerrors.ExitConfigNotFound) {
		t.Errorf("wrong error kind: %v", err)
	}
}

func TestSwap_FailureLeavesPointerUnchanged(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	// The destination's parent is a regular file, so materialization
	// cannot succeed.
	dest := filepath.Join(blocker, "out")

	group := newGroup(t, dest)
	installConfig(t, group, "minimal", map[string]string{"f": "x"})
	installConfig(t, group, "full", map[string]string{"f": "y"})

	group.Desc.Active = "full"
	if err := group.Save(); err != nil {
		t.Fatal(err)
	}

	err := Swap(group, "minimal")
	if !cerrors.HasCode(err, cerrors.ExitWriteFailed) {
		t.Fatalf("wrong error kind: %v", err)
	}

	persisted, loadErr := meta.Load(group.Dir)
	if loadErr != nil {
		t.Fatal(loadErr)
	}
	if persisted.Active != "full" {
		t.Errorf("persisted active = %q, want full", persisted.Active)
	}
	if group.Desc.Active != "full" {
		t.Errorf("in-memory active = %q, want full", group.Desc.Active)
	}
}

func TestUnswap(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dest", "nvim")
	group := newGroup(t, dest)
	installConfig(t, group, "minimal", map[string]string{"init.lua": "-- minimal"})

	if err := Swap(group, "minimal"); err != nil {
		t.Fatal(err)
	}

	if err := Unswap(group); err != nil {
		t.Fatalf("Unswap failed: %v", err)
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("destination still exists after unswap")
	}
	if group.Desc.Active != "" {
		t.Errorf("active = %q, want cleared", group.Desc.Active)
	}

	// Stored copy survives.
	storePath, _ := layout.StorePath(group.Dir, "minimal")
	if _, err := os.Stat(filepath.Join(storePath, "init.lua")); err != nil {
		t.Errorf("stored copy missing after unswap: %v", err)
	}

	// Unswap with nothing materialized is a no-op that succeeds.
	if err := Unswap(group); err != nil {
		t.Errorf("second Unswap failed: %v", err)
	}
}
