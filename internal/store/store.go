// Package store manages the set of config directories physically stored for
// one group, plus the parallel trash area for soft-deleted configs.
//
// Every config name is in exactly one of three locations at any time:
// stored, trashed, or absent. Mutations keep the group descriptor's config
// list in step with the directory layout by persisting through the meta
// package, the single writer of descriptor state.
package store

import (
	"iter"
	"os"
	"slices"

	cerrors "github.com/conswap/conswap/internal/errors"
	"github.com/conswap/conswap/internal/fetch"
	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/logging"
	"github.com/conswap/conswap/internal/registry"
)

// Location is the tagged storage state of a config name within a group.
type Location int

const (
	// Absent means the name is in neither the store nor the trash.
	Absent Location = iota
	// Stored means the config directory lives in the group's store.
	Stored
	// Trashed means the config directory lives in the group's trash.
	Trashed
)

func (l Location) String() string {
	switch l {
	case Stored:
		return "stored"
	case Trashed:
		return "trashed"
	default:
		return "absent"
	}
}

// SourceKind distinguishes install sources.
type SourceKind string

const (
	// SourceLocal installs by recursively copying a local path.
	SourceLocal SourceKind = "local"
	// SourceGit installs by cloning a remote repository.
	SourceGit SourceKind = "git"
)

// Source describes where an installed config comes from.
type Source struct {
	Kind     SourceKind
	Location string
}

// Store manages the configs of one group.
type Store struct {
	group   *registry.Group
	fetcher fetch.Fetcher
}

// New creates a Store for group. The fetcher handles git installs and may be
// nil if only local installs are performed.
func New(group *registry.Group, fetcher fetch.Fetcher) *Store {
	return &Store{group: group, fetcher: fetcher}
}

// Locate returns the storage state of name within the group.
func (s *Store) Locate(name string) (Location, error) {
	storePath, err := layout.StorePath(s.group.Dir, name)
	if err != nil {
		return Absent, cerrors.ValidationError(err.Error())
	}
	if info, err := os.Stat(storePath); err == nil && info.IsDir() {
		return Stored, nil
	}

	trashPath, err := layout.TrashPath(s.group.Dir, name)
	if err != nil {
		return Absent, cerrors.ValidationError(err.Error())
	}
	if info, err := os.Stat(trashPath); err == nil && info.IsDir() {
		return Trashed, nil
	}

	return Absent, nil
}

// Install brings a new config into the group's store, either by copying a
// local path or by cloning a remote repository through the fetcher.
//
// The name must not collide with a stored or trashed config. On any failure
// no partial config directory is left behind.
func (s *Store) Install(name string, src Source) error {
	loc, err := s.Locate(name)
	if err != nil {
		return err
	}
	if loc != Absent {
		return cerrors.AlreadyExists("config", name)
	}

	target, err := layout.StorePath(s.group.Dir, name)
	if err != nil {
		return cerrors.ValidationError(err.Error())
	}
	if err := os.MkdirAll(layout.StoreDir(s.group.Dir), 0755); err != nil {
		return cerrors.WriteFailed("config install", err)
	}

	logging.Debug("installing config",
		"group", s.group.Name,
		"name", name,
		"kind", string(src.Kind),
		"location", src.Location)

	switch src.Kind {
	case SourceLocal:
		info, err := os.Stat(src.Location)
		if err != nil {
			return cerrors.SourceUnavailable(src.Location, err)
		}
		if !info.IsDir() {
			return cerrors.SourceUnavailable(src.Location,
				cerrors.ValidationError("source is not a directory"))
		}
		if err := layout.CopyTree(src.Location, target); err != nil {
			os.RemoveAll(target)
			return cerrors.SourceUnavailable(src.Location, err)
		}

	case SourceGit:
		if s.fetcher == nil {
			return cerrors.SourceUnavailable(src.Location,
				cerrors.ValidationError("no fetcher configured"))
		}
		if err := s.fetcher.Fetch(src.Location, target); err != nil {
			os.RemoveAll(target)
			return cerrors.SourceUnavailable(src.Location, err)
		}

	default:
		return cerrors.ValidationError("unknown install source kind: " + string(src.Kind))
	}

	s.group.Desc.AddConfig(name)
	if err := s.group.Save(); err != nil {
		os.RemoveAll(target)
		s.group.Desc.RemoveConfig(name)
		return err
	}

	return nil
}

// Remove soft-deletes a stored config by moving its directory into the
// group's trash. If the config is currently active, the active pointer is
// cleared first; whatever is materialized at the destination path is left
// untouched. A previous trashed copy of the same name is discarded.
func (s *Store) Remove(name string) error {
	loc, err := s.Locate(name)
	if err != nil {
		return err
	}
	if loc != Stored {
		return cerrors.ConfigNotFound(s.group.Name, name)
	}

	// Clear the active pointer before the directory disappears so the
	// descriptor never points at a missing entry.
	if s.group.Desc.Active == name {
		s.group.Desc.Active = ""
		if err := s.group.Save(); err != nil {
			return err
		}
	}

	storePath, err := layout.StorePath(s.group.Dir, name)
	if err != nil {
		return cerrors.ValidationError(err.Error())
	}
	trashPath, err := layout.TrashPath(s.group.Dir, name)
	if err != nil {
		return cerrors.ValidationError(err.Error())
	}

	if err := os.MkdirAll(layout.TrashDir(s.group.Dir), 0755); err != nil {
		return cerrors.WriteFailed("config remove", err)
	}

	if _, err := os.Stat(trashPath); err == nil {
		logging.Warn("discarding previous trashed copy", "group", s.group.Name, "name", name)
		if err := os.RemoveAll(trashPath); err != nil {
			return cerrors.WriteFailed("config remove", err)
		}
	}

	if err := os.Rename(storePath, trashPath); err != nil {
		return cerrors.WriteFailed("config remove", err)
	}

	s.group.Desc.RemoveConfig(name)
	return s.group.Save()
}

// Restore moves a trashed config back into the store.
func (s *Store) Restore(name string) error {
	loc, err := s.Locate(name)
	if err != nil {
		return err
	}
	switch loc {
	case Stored:
		return cerrors.AlreadyExists("config", name)
	case Absent:
		return cerrors.TrashNotFound(s.group.Name, name)
	}

	storePath, err := layout.StorePath(s.group.Dir, name)
	if err != nil {
		return cerrors.ValidationError(err.Error())
	}
	trashPath, err := layout.TrashPath(s.group.Dir, name)
	if err != nil {
		return cerrors.ValidationError(err.Error())
	}

	if err := os.MkdirAll(layout.StoreDir(s.group.Dir), 0755); err != nil {
		return cerrors.WriteFailed("config restore", err)
	}

	if err := os.Rename(trashPath, storePath); err != nil {
		return cerrors.WriteFailed("config restore", err)
	}

	s.group.Desc.AddConfig(name)
	return s.group.Save()
}

// Purge permanently deletes a config from the trash. A config still in the
// store (or absent entirely) is reported as not found in trash.
func (s *Store) Purge(name string) error {
	loc, err := s.Locate(name)
	if err != nil {
		return err
	}
	if loc != Trashed {
		return cerrors.TrashNotFound(s.group.Name, name)
	}

	trashPath, err := layout.TrashPath(s.group.Dir, name)
	if err != nil {
		return cerrors.ValidationError(err.Error())
	}

	logging.Debug("purging config", "group", s.group.Name, "name", name)

	if err := os.RemoveAll(trashPath); err != nil {
		return cerrors.WriteFailed("config purge", err)
	}
	return nil
}

// Configs yields the names of the stored config directories in order.
// The sequence is lazy and restartable.
func (s *Store) Configs() iter.Seq[string] {
	return dirNames(layout.StoreDir(s.group.Dir))
}

// Trashed yields the names of the trashed config directories in order.
// The sequence is lazy and restartable.
func (s *Store) Trashed() iter.Seq[string] {
	return dirNames(layout.TrashDir(s.group.Dir))
}

func dirNames(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				names = append(names, entry.Name())
			}
		}
		slices.Sort(names)

		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}
