package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/audit"
	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/logging"
	"github.com/conswap/conswap/internal/store"
)

var installName string

var installCmd = &cobra.Command{
	Use:   "install <group> <local|git> <location>",
	Short: "Install a new config to an existing group",
	Long: `Brings a new config into a group's store, either by recursively
copying a local directory or by cloning a remote git repository.

The config name defaults to the base name of the location and can be
overridden with --name.`,
	Args: cobra.ExactArgs(3),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installName, "name", "n", "", "Name to install the config under")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	groupName, kind, location := args[0], args[1], args[2]

	var sourceKind store.SourceKind
	switch kind {
	case "local":
		sourceKind = store.SourceLocal
	case "git":
		sourceKind = store.SourceGit
	default:
		return fmt.Errorf("unknown source %q (must be local or git)", kind)
	}

	group, err := loadGroup(groupName)
	if err != nil {
		return err
	}

	name := installName
	if name == "" {
		name = defaultConfigName(location)
	}
	if err := layout.ValidateName(name); err != nil {
		return fmt.Errorf("cannot derive a config name from %q: %w (use --name)", location, err)
	}

	logging.Debug("installing", "group", groupName, "name", name, "kind", kind, "location", location)

	src := store.Source{Kind: sourceKind, Location: location}
	if err := storeFor(group).Install(name, src); err != nil {
		return err
	}

	_ = auditLog().LogEvent(audit.EventInstall, groupName,
		fmt.Sprintf("name=%s kind=%s location=%s", name, kind, location))

	logSuccess("Installed config %s to group %s", name, groupName)
	return nil
}

// defaultConfigName derives a config name from an install location: the last
// path element, with a trailing .git stripped for repository URLs.
func defaultConfigName(location string) string {
	base := filepath.Base(strings.TrimRight(location, "/"))
	return strings.TrimSuffix(base, ".git")
}
