package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/audit"
	"github.com/conswap/conswap/internal/logging"
	"github.com/conswap/conswap/internal/swap"
)

var swapCmd = &cobra.Command{
	Use:   "swap <group> <config>",
	Short: "Swap between configs",
	Long: `Materializes the named config at the group's destination path and
marks it active. Whatever previously sat at the destination is
replaced; the stored copies of all configs are untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)
}

func runSwap(cmd *cobra.Command, args []string) error {
	name, config := args[0], args[1]

	group, err := loadGroup(name)
	if err != nil {
		return err
	}

	logging.Debug("swapping", "group", name, "config", config)

	if err := swap.Swap(group, config); err != nil {
		return err
	}

	_ = auditLog().LogEvent(audit.EventSwap, name, "config="+config)

	logSuccess("Swapped group %s to config %s", name, config)
	return nil
}
