// Package meta reads, writes, and validates per-group descriptors.
//
// A descriptor is the single source of truth for a group's attributes,
// including which config is active at the destination path. It is stored as
// a human-editable group.toml file; any deviation from the expected schema
// (unknown keys, wrong types, missing required keys) is reported as corrupt
// rather than coerced, so the fix command stays the single recovery path.
package meta

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	cerrors "github.com/conswap/conswap/internal/errors"
	"github.com/conswap/conswap/internal/layout"
)

// Descriptor is the persisted metadata record for one group.
type Descriptor struct {
	Name     string   `toml:"name"`
	Desc     string   `toml:"desc"`
	DestPath string   `toml:"dest_path"`
	Active   string   `toml:"active,omitempty"`
	Configs  []string `toml:"configs"`
}

// Configured reports whether the group has a destination path set.
func (d *Descriptor) Configured() bool {
	return d.DestPath != ""
}

// HasConfig reports whether name is in the stored config set.
func (d *Descriptor) HasConfig(name string) bool {
	return slices.Contains(d.Configs, name)
}

// AddConfig inserts name into the stored config set, keeping it ordered.
// Adding an existing name is a no-op.
func (d *Descriptor) AddConfig(name string) {
	idx, found := slices.BinarySearch(d.Configs, name)
	if found {
		return
	}
	d.Configs = slices.Insert(d.Configs, idx, name)
}

// RemoveConfig removes name from the stored config set if present.
func (d *Descriptor) RemoveConfig(name string) {
	idx, found := slices.BinarySearch(d.Configs, name)
	if found {
		d.Configs = slices.Delete(d.Configs, idx, idx+1)
	}
}

// Validate checks the descriptor's internal consistency.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return cerrors.ValidationError("descriptor name is required")
	}
	if d.Active != "" && !d.HasConfig(d.Active) {
		return cerrors.ValidationError("active config " + d.Active + " is not in the stored config set")
	}
	return nil
}

// Load reads and validates the descriptor in groupDir.
//
// A missing file is reported with an error wrapping fs.ErrNotExist. A file
// that exists but cannot be parsed into the expected schema, carries unknown
// keys, or lacks the required name and dest_path keys is reported as corrupt.
func Load(groupDir string) (*Descriptor, error) {
	// The descriptor may be unparseable, so the group name for error
	// reporting comes from the directory, not the file.
	name := filepath.Base(groupDir)

	path := layout.DescriptorPath(groupDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.Wrap(cerrors.ExitGroupNotFound, "descriptor not found", err)
		}
		return nil, cerrors.CorruptDescriptor(name, err)
	}

	var d Descriptor
	md, err := toml.Decode(string(data), &d)
	if err != nil {
		return nil, cerrors.CorruptDescriptor(name, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, cerrors.CorruptDescriptor(name,
			cerrors.ValidationError("unknown descriptor key: "+undecoded[0].String()))
	}

	// name and dest_path keys must be present; an empty dest_path value
	// means "not configured" and is legal.
	if !md.IsDefined("name") || d.Name == "" {
		return nil, cerrors.CorruptDescriptor(name,
			cerrors.ValidationError("required key missing: name"))
	}
	if !md.IsDefined("dest_path") {
		return nil, cerrors.CorruptDescriptor(name,
			cerrors.ValidationError("required key missing: dest_path"))
	}

	if err := d.Validate(); err != nil {
		return nil, cerrors.CorruptDescriptor(name, err)
	}

	return &d, nil
}

// IsNotFound reports whether err marks a missing descriptor file.
func IsNotFound(err error) bool {
	return cerrors.Is(err, fs.ErrNotExist)
}

// IsCorrupt reports whether err marks an unparseable or malformed descriptor.
func IsCorrupt(err error) bool {
	return cerrors.HasCode(err, cerrors.ExitCorruptDescriptor)
}

// Save writes the descriptor to groupDir atomically: the serialized form is
// written to a temporary file and renamed into place, so a crash mid-write
// never leaves a half-written descriptor behind.
func Save(groupDir string, d *Descriptor) error {
	if err := d.Validate(); err != nil {
		return cerrors.WriteFailed("descriptor save", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(d); err != nil {
		return cerrors.WriteFailed("descriptor encode", err)
	}

	path := layout.DescriptorPath(groupDir)
	tmp, err := os.CreateTemp(groupDir, layout.DescriptorName+".tmp-*")
	if err != nil {
		return cerrors.WriteFailed("descriptor write", err)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return cerrors.WriteFailed("descriptor write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return cerrors.WriteFailed("descriptor write", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return cerrors.WriteFailed("descriptor rename", err)
	}

	return nil
}

// Create writes an initial descriptor for a new group with an empty config
// set and no active config.
func Create(groupDir, name, destPath, desc string) (*Descriptor, error) {
	d := &Descriptor{
		Name:     name,
		Desc:     desc,
		DestPath: destPath,
		Configs:  []string{},
	}
	if err := Save(groupDir, d); err != nil {
		return nil, err
	}
	return d, nil
}
