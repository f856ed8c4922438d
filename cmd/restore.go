package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/audit"
	"github.com/conswap/conswap/internal/logging"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <group> <config>",
	Short: "Restore a previously removed config from the trash",
	Args:  cobra.ExactArgs(2),
	RunE:  runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	groupName, config := args[0], args[1]

	group, err := loadGroup(groupName)
	if err != nil {
		return err
	}

	logging.Debug("restoring", "group", groupName, "config", config)

	if err := storeFor(group).Restore(config); err != nil {
		return err
	}

	_ = auditLog().LogEvent(audit.EventRestore, groupName, "config="+config)

	logSuccess("Restored config %s to group %s", config, groupName)
	return nil
}
