// Package swap materializes a group's configs at its destination path.
//
// Swapping is the central state-changing operation: it replaces whatever
// sits at the destination with the target config's files, then advances the
// descriptor's active pointer. The pointer is only persisted after the
// destination mutation succeeds, so a failed materialization leaves the
// prior pointer in place rather than one referencing a half-written config.
package swap

import (
	"os"
	"path/filepath"

	cerrors "github.com/conswap/conswap/internal/errors"
	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/logging"
	"github.com/conswap/conswap/internal/registry"
)

// stagingSuffix names the temporary sibling used to stage the new
// destination contents before they replace the old ones.
const stagingSuffix = ".conswap-staging"

// Swap makes configName's contents appear at the group's destination path
// and updates the active-config pointer.
//
// Swapping unconditionally overwrites the destination. When the destination
// already holds contents the descriptor does not account for, a warning is
// logged and the swap proceeds; warning the user interactively is a caller
// concern.
func Swap(group *registry.Group, configName string) error {
	if !group.Desc.Configured() {
		return cerrors.ValidationError(
			"group " + group.Name + " has no destination path; set it with configure")
	}

	src, err := layout.StorePath(group.Dir, configName)
	if err != nil {
		return cerrors.ValidationError(err.Error())
	}
	if info, statErr := os.Stat(src); statErr != nil || !info.IsDir() {
		return cerrors.ConfigNotFound(group.Name, configName)
	}
	if !group.Desc.HasConfig(configName) {
		return cerrors.ConfigNotFound(group.Name, configName)
	}

	dest := group.Desc.DestPath

	if _, err := os.Lstat(dest); err == nil && group.Desc.Active == "" {
		logging.UserWarning("Destination %s has contents not tracked by group %s; they will be overwritten", dest, group.Name)
	}

	logging.Debug("swapping",
		"group", group.Name,
		"config", configName,
		"dest", dest)

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return cerrors.WriteFailed("swap", err)
	}

	// Stage the full copy next to the destination first. If the copy fails
	// partway, the destination and the active pointer are both untouched.
	staging := dest + stagingSuffix
	if err := os.RemoveAll(staging); err != nil {
		return cerrors.WriteFailed("swap", err)
	}
	if err := layout.CopyTree(src, staging); err != nil {
		os.RemoveAll(staging)
		return cerrors.WriteFailed("swap", err)
	}

	if err := os.RemoveAll(dest); err != nil {
		os.RemoveAll(staging)
		return cerrors.WriteFailed("swap", err)
	}
	if err := os.Rename(staging, dest); err != nil {
		os.RemoveAll(staging)
		return cerrors.WriteFailed("swap", err)
	}

	group.Desc.Active = configName
	return group.Save()
}

// Unswap removes the materialized files at the group's destination path and
// clears the active-config pointer. The stored copy of the config is
// untouched. Destructive with respect to the destination; confirmation is a
// caller concern.
func Unswap(group *registry.Group) error {
	if !group.Desc.Configured() {
		return cerrors.ValidationError(
			"group " + group.Name + " has no destination path; set it with configure")
	}

	dest := group.Desc.DestPath

	if _, err := os.Lstat(dest); err == nil && group.Desc.Active == "" {
		logging.UserWarning("Destination %s has contents not tracked by group %s; they will be removed", dest, group.Name)
	}

	logging.Debug("unswapping", "group", group.Name, "dest", dest)

	if err := os.RemoveAll(dest); err != nil {
		return cerrors.WriteFailed("unswap", err)
	}

	group.Desc.Active = ""
	return group.Save()
}
