package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/logging"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a group of configs",
	Long: `Deletes a group's entire directory tree: descriptor, stored configs,
and trashed configs. This is destructive and irreversible.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	logging.Debug("deleting group", "name", name)

	if err := reg().Delete(name); err != nil {
		return err
	}

	logSuccess("Deleted group %s", name)
	return nil
}
