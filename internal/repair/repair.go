// Package repair reconciles a group's descriptor against its store
// directory, treating the directory layout as ground truth.
//
// Repair only touches descriptor entries: config entries present on disk but
// missing from the descriptor are added, entries with no directory are
// dropped, and a dangling active pointer is cleared. An unreadable
// descriptor is rebuilt from the store listing alone. The trash area, the
// destination path, and config file contents are never modified, so repair
// is safe to run repeatedly.
package repair

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/logging"
	"github.com/conswap/conswap/internal/meta"
)

// ChangeKind classifies a repair change.
type ChangeKind string

const (
	// ChangeAdded records a config directory added to the descriptor.
	ChangeAdded ChangeKind = "added"
	// ChangeDropped records a descriptor entry dropped for lack of a directory.
	ChangeDropped ChangeKind = "dropped"
	// ChangeActiveCleared records a dangling active pointer being cleared.
	ChangeActiveCleared ChangeKind = "active-cleared"
	// ChangeRebuilt records a descriptor rebuilt from the store listing.
	ChangeRebuilt ChangeKind = "rebuilt"
)

// Change is one descriptor modification made by Fix.
type Change struct {
	Kind   ChangeKind
	Config string
	Reason string
}

// Report enumerates the changes Fix made to one group.
type Report struct {
	Group string
	// NeedsReconfigure is set when the descriptor was rebuilt and its
	// description and destination path were left blank.
	NeedsReconfigure bool
	Changes          []Change
}

// Empty reports whether Fix found the group consistent.
func (r *Report) Empty() bool {
	return len(r.Changes) == 0
}

// Fix reconciles the descriptor in groupDir with the store directory
// listing and persists the result if anything changed.
func Fix(groupDir string) (*Report, error) {
	name := filepath.Base(groupDir)
	report := &Report{Group: name}

	onDisk, err := storeListing(groupDir)
	if err != nil {
		return nil, err
	}

	d, err := meta.Load(groupDir)
	switch {
	case err == nil:
		// Reconcile below.
	case meta.IsNotFound(err) || meta.IsCorrupt(err):
		// Rebuild from the directory listing alone. Description and
		// destination path cannot be recovered and are left blank.
		logging.Debug("rebuilding descriptor", "group", name, "cause", err)
		d = &meta.Descriptor{Name: name, Configs: slices.Clone(onDisk)}
		report.NeedsReconfigure = true
		report.Changes = append(report.Changes, Change{
			Kind:   ChangeRebuilt,
			Reason: fmt.Sprintf("descriptor unreadable (%v); rebuilt from store listing", err),
		})
		for _, config := range onDisk {
			report.Changes = append(report.Changes, Change{
				Kind:   ChangeAdded,
				Config: config,
				Reason: "directory present in store",
			})
		}
		if err := meta.Save(groupDir, d); err != nil {
			return nil, err
		}
		return report, nil
	default:
		return nil, err
	}

	for _, config := range onDisk {
		if !d.HasConfig(config) {
			d.AddConfig(config)
			report.Changes = append(report.Changes, Change{
				Kind:   ChangeAdded,
				Config: config,
				Reason: "directory present in store but missing from descriptor",
			})
		}
	}

	for _, config := range slices.Clone(d.Configs) {
		if !slices.Contains(onDisk, config) {
			d.RemoveConfig(config)
			report.Changes = append(report.Changes, Change{
				Kind:   ChangeDropped,
				Config: config,
				Reason: "descriptor entry has no directory in store",
			})
		}
	}

	if d.Active != "" && !slices.Contains(onDisk, d.Active) {
		report.Changes = append(report.Changes, Change{
			Kind:   ChangeActiveCleared,
			Config: d.Active,
			Reason: "active config has no directory in store",
		})
		d.Active = ""
	}

	if report.Empty() {
		return report, nil
	}

	if err := meta.Save(groupDir, d); err != nil {
		return nil, err
	}
	return report, nil
}

// storeListing returns the sorted config directory names under the group's
// store. A missing store directory is treated as empty.
func storeListing(groupDir string) ([]string, error) {
	entries, err := os.ReadDir(layout.StoreDir(groupDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}
