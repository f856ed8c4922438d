// Package registry enumerates and manages the groups under a state root.
//
// The registry owns group creation and deletion and enforces name
// uniqueness; everything group-scoped (configs, swapping, repair) operates
// on the Group handles it resolves.
package registry

import (
	"iter"
	"os"
	"slices"

	cerrors "github.com/conswap/conswap/internal/errors"
	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/logging"
	"github.com/conswap/conswap/internal/meta"
)

// Registry manages the set of groups under one state root.
type Registry struct {
	paths *layout.Paths
}

// New creates a Registry rooted at paths.
func New(paths *layout.Paths) *Registry {
	return &Registry{paths: paths}
}

// Group is a resolved group: its directory plus its loaded descriptor.
type Group struct {
	Name string
	Dir  string
	Desc *meta.Descriptor
}

// Save persists the group's descriptor.
func (g *Group) Save() error {
	return meta.Save(g.Dir, g.Desc)
}

// StoreDir returns the group's store directory.
func (g *Group) StoreDir() string {
	return layout.StoreDir(g.Dir)
}

// TrashDir returns the group's trash directory.
func (g *Group) TrashDir() string {
	return layout.TrashDir(g.Dir)
}

// Exists reports whether a group directory of this name exists.
// Names are matched exactly and case-sensitively.
func (r *Registry) Exists(name string) bool {
	dir, err := r.paths.GroupDir(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// Create makes a new group: its directory, store and trash subdirectories,
// and an initial descriptor with an empty config set and no active config.
// destPath may be empty, leaving the destination to be configured later.
func (r *Registry) Create(name, destPath, desc string) (*Group, error) {
	dir, err := r.paths.GroupDir(name)
	if err != nil {
		return nil, cerrors.ValidationError(err.Error())
	}

	if r.Exists(name) {
		return nil, cerrors.AlreadyExists("group", name)
	}

	if err := r.paths.EnsureRoot(); err != nil {
		return nil, cerrors.WriteFailed("group create", err)
	}

	for _, d := range []string{dir, layout.StoreDir(dir), layout.TrashDir(dir)} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return nil, cerrors.WriteFailed("group create", err)
		}
	}

	descriptor, err := meta.Create(dir, name, destPath, desc)
	if err != nil {
		// Don't leave a half-created group behind.
		os.RemoveAll(dir)
		return nil, err
	}

	logging.Debug("created group", "name", name, "dir", dir, "dest", destPath)

	return &Group{Name: name, Dir: dir, Desc: descriptor}, nil
}

// Delete removes a group's entire directory tree: descriptor, store, and
// trash. Destructive and irreversible; confirmation is a caller concern.
func (r *Registry) Delete(name string) error {
	dir, err := r.paths.GroupDir(name)
	if err != nil {
		return cerrors.ValidationError(err.Error())
	}

	if !r.Exists(name) {
		return cerrors.GroupNotFound(name)
	}

	logging.Debug("deleting group", "name", name, "dir", dir)

	if err := os.RemoveAll(dir); err != nil {
		return cerrors.WriteFailed("group delete", err)
	}
	return nil
}

// Get resolves a group by name and loads its descriptor.
// A corrupt descriptor surfaces as an error; fix is the recovery path.
func (r *Registry) Get(name string) (*Group, error) {
	dir, err := r.paths.GroupDir(name)
	if err != nil {
		return nil, cerrors.ValidationError(err.Error())
	}

	if !r.Exists(name) {
		return nil, cerrors.GroupNotFound(name)
	}

	descriptor, err := meta.Load(dir)
	if err != nil {
		return nil, err
	}

	return &Group{Name: name, Dir: dir, Desc: descriptor}, nil
}

// Names returns the names of all group directories, sorted.
func (r *Registry) Names() ([]string, error) {
	entries, err := os.ReadDir(r.paths.GroupsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, cerrors.Wrap(cerrors.ExitGeneralError, "failed to read groups directory", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	return names, nil
}

// Summary is a one-line view of a group for listing.
type Summary struct {
	Name     string
	Desc     string
	DestPath string
	Active   string
	Configs  int

	// Err is set when the group's descriptor could not be loaded; the
	// remaining fields are then zero except Name.
	Err error
}

// Groups yields a name-ordered summary per group. The sequence is lazy and
// restartable: each range re-reads the groups directory.
func (r *Registry) Groups() iter.Seq[Summary] {
	return func(yield func(Summary) bool) {
		names, err := r.Names()
		if err != nil {
			return
		}

		for _, name := range names {
			s := Summary{Name: name}
			dir, err := r.paths.GroupDir(name)
			if err != nil {
				s.Err = err
			} else if d, err := meta.Load(dir); err != nil {
				s.Err = err
			} else {
				s.Desc = d.Desc
				s.DestPath = d.DestPath
				s.Active = d.Active
				s.Configs = len(d.Configs)
			}

			if !yield(s) {
				return
			}
		}
	}
}

// Descriptor fields that Configure accepts.
const (
	FieldDesc     = "desc"
	FieldDestPath = "dest_path"
)

// Configure updates exactly one descriptor field and persists it.
// Changing dest_path never moves or re-swaps files; it only changes where
// future swaps will target.
func (r *Registry) Configure(name, field, value string) error {
	group, err := r.Get(name)
	if err != nil {
		return err
	}

	switch field {
	case FieldDesc:
		group.Desc.Desc = value
	case FieldDestPath:
		group.Desc.DestPath = value
	default:
		return cerrors.InvalidField(field)
	}

	logging.Debug("configured group", "name", name, "field", field, "value", value)

	return group.Save()
}
