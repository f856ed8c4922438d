package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/audit"
	"github.com/conswap/conswap/internal/logging"
)

var (
	newDest string
	newDesc string
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new (empty) group of swappable configs",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&newDest, "dest", "", "Path that files will be swapped to")
	newCmd.Flags().StringVar(&newDesc, "desc", "", "Group description (optional)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	logging.Debug("creating group", "name", name, "dest", newDest)

	group, err := reg().Create(name, newDest, newDesc)
	if err != nil {
		return err
	}

	_ = auditLog().LogEvent(audit.EventCreate, name, "dest="+newDest)

	logSuccess("Created group %s (at %s)", name, group.Dir)

	if newDest == "" {
		logWarning("Destination path not configured; set it with: conswap configure %s dest_path <path>", name)
	} else if _, err := os.Lstat(newDest); err == nil {
		logWarning("Destination %s already has contents; they will be overwritten on the first swap", newDest)
	}

	return nil
}
