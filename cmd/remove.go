package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/audit"
	"github.com/conswap/conswap/internal/logging"
)

var removeTrash bool

var removeCmd = &cobra.Command{
	Use:   "remove <group> <config>",
	Short: "Remove a config from a group",
	Long: `Moves a config from the group's store into its trash, where it can be
restored later. If the config is currently active, the active pointer
is cleared; the files materialized at the destination are untouched.

With --trash, permanently deletes a config that is already in the
trash. This cannot be undone.`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeTrash, "trash", "t", false, "Permanently delete an already-removed config from the trash")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	groupName, config := args[0], args[1]

	group, err := loadGroup(groupName)
	if err != nil {
		return err
	}

	st := storeFor(group)

	if removeTrash {
		logging.Debug("purging", "group", groupName, "config", config)

		if err := st.Purge(config); err != nil {
			return err
		}

		_ = auditLog().LogEvent(audit.EventPurge, groupName, "config="+config)

		logSuccess("Permanently removed config %s from trash of group %s", config, groupName)
		return nil
	}

	logging.Debug("removing", "group", groupName, "config", config)

	if err := st.Remove(config); err != nil {
		return err
	}

	_ = auditLog().LogEvent(audit.EventRemove, groupName, "config="+config)

	logSuccess("Moved config %s to trash of group %s", config, groupName)
	logInfo("Restore it with: conswap restore %s %s", groupName, config)
	return nil
}
