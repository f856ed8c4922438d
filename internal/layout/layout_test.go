package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	valid := []string{"neovim", "cfg_a", "Cfg-B", "_private", "0zero", "a"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "-leading", "has space", "a/b", "../evil", ".", "..", strings.Repeat("x", 64)}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		}
	}
}

func TestGroupDir_RejectsTraversal(t *testing.T) {
	p := NewPaths(t.TempDir())

	if _, err := p.GroupDir("../escape"); err == nil {
		t.Error("expected error for traversal name")
	}

	dir, err := p.GroupDir("neovim")
	if err != nil {
		t.Fatalf("GroupDir failed: %v", err)
	}
	if filepath.Dir(dir) != p.GroupsDir {
		t.Errorf("group dir %q not directly under %q", dir, p.GroupsDir)
	}
}

func TestStoreAndTrashPaths(t *testing.T) {
	groupDir := filepath.Join(t.TempDir(), "groups", "neovim")

	sp, err := StorePath(groupDir, "minimal")
	if err != nil {
		t.Fatalf("StorePath failed: %v", err)
	}
	if sp != filepath.Join(groupDir, "store", "minimal") {
		t.Errorf("unexpected store path: %s", sp)
	}

	tp, err := TrashPath(groupDir, "minimal")
	if err != nil {
		t.Fatalf("TrashPath failed: %v", err)
	}
	if tp != filepath.Join(groupDir, "trash", "minimal") {
		t.Errorf("unexpected trash path: %s", tp)
	}

	if _, err := StorePath(groupDir, "a/b"); err == nil {
		t.Error("expected error for config name with separator")
	}
}

func TestDefaultPaths_EnvOverride(t *testing.T) {
	t.Setenv("CONSWAP_ROOT", "/tmp/conswap-test-root")

	p, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths failed: %v", err)
	}
	if p.Root != "/tmp/conswap-test-root" {
		t.Errorf("root = %q, want env override", p.Root)
	}
	if p.GroupsDir != filepath.Join(p.Root, "groups") {
		t.Errorf("groups dir = %q", p.GroupsDir)
	}
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "nested", "deep"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "init.lua"), []byte("print('hi')"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "nested", "deep", "keymap.lua"), []byte("-- keys"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink("init.lua", filepath.Join(src, "link.lua")); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "copy")
	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "nested", "deep", "keymap.lua"))
	if err != nil {
		t.Fatalf("copied file missing: %v", err)
	}
	if string(data) != "-- keys" {
		t.Errorf("copied content = %q", data)
	}

	link, err := os.Readlink(filepath.Join(dst, "link.lua"))
	if err != nil {
		t.Fatalf("symlink not copied: %v", err)
	}
	if link != "init.lua" {
		t.Errorf("symlink target = %q", link)
	}

	info, err := os.Stat(filepath.Join(dst, "nested", "deep", "keymap.lua"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a"), make([]byte, 100), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "b"), make([]byte, 24), 0644); err != nil {
		t.Fatal(err)
	}

	size, err := DirSize(dir)
	if err != nil {
		t.Fatalf("DirSize failed: %v", err)
	}
	if size != 124 {
		t.Errorf("size = %d, want 124", size)
	}
}

func TestFormatSize(t *testing.T) {
	cases := map[int64]string{
		0:    "0.0B",
		512:  "512.0B",
		2048: "2.0KB",
	}
	for bytes, want := range cases {
		if got := FormatSize(bytes); got != want {
			t.Errorf("FormatSize(%d) = %q, want %q", bytes, got, want)
		}
	}
}
