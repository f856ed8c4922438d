// Package layout defines the on-disk layout of the conswap state root and
// provides safe path resolution for group and config names.
//
// The layout under the root is:
//
//	<root>/groups/<group-name>/group.toml
//	<root>/groups/<group-name>/store/<config-name>/
//	<root>/groups/<group-name>/trash/<config-name>/
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	securejoin "github.com/cyphar/filepath-securejoin"
)

const (
	// DescriptorName is the per-group descriptor filename.
	DescriptorName = "group.toml"

	groupsDirName = "groups"
	storeDirName  = "store"
	trashDirName  = "trash"
)

// nameRegex validates group and config names.
// Names must start with a letter, digit, or underscore, followed by letters,
// digits, underscores, or hyphens. Maximum length is 63 characters.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_-]{0,62}$`)

// ValidateName checks if a group or config name is valid.
// Valid names:
//   - Start with a letter, digit, or underscore
//   - Contain only letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
//   - Do not contain path separators or special characters
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid name %q: must start with a letter, digit, or underscore, contain only letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

// Paths holds the configured state root paths.
type Paths struct {
	Root      string
	GroupsDir string
}

// NewPaths returns the path configuration for a given state root.
func NewPaths(root string) *Paths {
	return &Paths{
		Root:      root,
		GroupsDir: filepath.Join(root, groupsDirName),
	}
}

// DefaultPaths returns the default path configuration.
// The root is CONSWAP_ROOT if set, otherwise <user config dir>/conswap.
func DefaultPaths() (*Paths, error) {
	if root := os.Getenv("CONSWAP_ROOT"); root != "" {
		return NewPaths(root), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user config directory: %w", err)
	}

	return NewPaths(filepath.Join(configDir, "conswap")), nil
}

// EnsureRoot creates the groups directory if it does not exist.
func (p *Paths) EnsureRoot() error {
	if err := os.MkdirAll(p.GroupsDir, 0755); err != nil {
		return fmt.Errorf("failed to create groups directory: %w", err)
	}
	return nil
}

// GroupDir resolves the directory for a group, rejecting names that would
// escape the groups directory.
func (p *Paths) GroupDir(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return securejoin.SecureJoin(p.GroupsDir, name)
}

// DescriptorPath returns the path of a group's descriptor file.
func DescriptorPath(groupDir string) string {
	return filepath.Join(groupDir, DescriptorName)
}

// StoreDir returns a group's store directory.
func StoreDir(groupDir string) string {
	return filepath.Join(groupDir, storeDirName)
}

// TrashDir returns a group's trash directory.
func TrashDir(groupDir string) string {
	return filepath.Join(groupDir, trashDirName)
}

// StorePath resolves the store directory for a named config, rejecting names
// that would escape the store.
func StorePath(groupDir, config string) (string, error) {
	if err := ValidateName(config); err != nil {
		return "", err
	}
	return securejoin.SecureJoin(StoreDir(groupDir), config)
}

// TrashPath resolves the trash directory for a named config, rejecting names
// that would escape the trash.
func TrashPath(groupDir, config string) (string, error) {
	if err := ValidateName(config); err != nil {
		return "", err
	}
	return securejoin.SecureJoin(TrashDir(groupDir), config)
}
