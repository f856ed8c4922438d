package meta

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/conswap/conswap/internal/layout"
)

func TestCreateAndLoad(t *testing.T) {
	dir := t.TempDir()

	created, err := Create(dir, "neovim", "/home/u/.config/nvim", "editor configs")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Active != "" {
		t.Errorf("new descriptor has active = %q", created.Active)
	}
	if len(created.Configs) != 0 {
		t.Errorf("new descriptor has configs = %v", created.Configs)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "neovim" || loaded.DestPath != "/home/u/.config/nvim" || loaded.Desc != "editor configs" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing descriptor")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for %v", err)
	}
	if IsCorrupt(err) {
		t.Errorf("missing descriptor reported as corrupt: %v", err)
	}
}

func writeDescriptor(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(layout.DescriptorPath(dir), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	cases := map[string]string{
		"unparseable":       "name = [broken",
		"empty file":        "",
		"missing name":      "dest_path = \"/tmp/x\"\n",
		"missing dest_path": "name = \"neovim\"\n",
		"unknown key":       "name = \"neovim\"\ndest_path = \"/tmp/x\"\nbogus = 1\n",
		"wrong type":        "name = \"neovim\"\ndest_path = 42\n",
		"dangling active":   "name = \"neovim\"\ndest_path = \"/tmp/x\"\nactive = \"gone\"\nconfigs = []\n",
	}

	for label, content := range cases {
		t.Run(label, func(t *testing.T) {
			dir := t.TempDir()
			writeDescriptor(t, dir, content)

			_, err := Load(dir)
			if err == nil {
				t.Fatal("expected corrupt error")
			}
			if !IsCorrupt(err) {
				t.Errorf("IsCorrupt = false for %v", err)
			}
		})
	}
}

func TestLoad_CorruptNamesGroupByDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "neovim")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	writeDescriptor(t, dir, "name = [broken")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected corrupt error")
	}
	if !strings.Contains(err.Error(), "corrupt descriptor for group neovim") {
		t.Errorf("error does not name the group: %v", err)
	}
	if strings.Contains(err.Error(), dir) {
		t.Errorf("error leaks the full group path: %v", err)
	}
}

func TestLoad_EmptyDestPathIsLegal(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "name = \"neovim\"\ndest_path = \"\"\nconfigs = []\n")

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.Configured() {
		t.Error("empty dest_path reported as configured")
	}
}

func TestSave_Atomic(t *testing.T) {
	dir := t.TempDir()
	if _, err := Create(dir, "neovim", "/tmp/x", ""); err != nil {
		t.Fatal(err)
	}

	d := &Descriptor{Name: "neovim", DestPath: "/tmp/y", Configs: []string{"a"}}
	if err := Save(dir, d); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}
	if loaded.DestPath != "/tmp/y" {
		t.Errorf("dest = %q, want /tmp/y", loaded.DestPath)
	}
}

func TestSave_RejectsDanglingActive(t *testing.T) {
	dir := t.TempDir()
	d := &Descriptor{Name: "neovim", DestPath: "/tmp/x", Active: "gone"}

	if err := Save(dir, d); err == nil {
		t.Error("expected error for active pointer outside config set")
	}
	if _, err := os.Stat(layout.DescriptorPath(dir)); !os.IsNotExist(err) {
		t.Error("invalid descriptor was written")
	}
}

func TestDescriptor_ConfigSet(t *testing.T) {
	d := &Descriptor{Name: "neovim", DestPath: "/tmp/x"}

	d.AddConfig("beta")
	d.AddConfig("alpha")
	d.AddConfig("beta") // duplicate is a no-op

	if !slices.Equal(d.Configs, []string{"alpha", "beta"}) {
		t.Errorf("configs = %v, want ordered [alpha beta]", d.Configs)
	}
	if !d.HasConfig("alpha") || d.HasConfig("gamma") {
		t.Error("HasConfig mismatch")
	}

	d.RemoveConfig("alpha")
	d.RemoveConfig("gamma") // absent is a no-op
	if !slices.Equal(d.Configs, []string{"beta"}) {
		t.Errorf("configs after remove = %v", d.Configs)
	}
}

func TestDescriptor_HumanEditable(t *testing.T) {
	// A hand-written descriptor in conventional TOML must load.
	dir := t.TempDir()
	writeDescriptor(t, dir, `
name = "neovim"
desc = "my editor"
dest_path = "/home/u/.config/nvim"
active = "minimal"
configs = ["full", "minimal"]
`)

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.Active != "minimal" || len(d.Configs) != 2 {
		t.Errorf("unexpected descriptor: %+v", d)
	}
}
