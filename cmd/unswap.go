package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/audit"
	"github.com/conswap/conswap/internal/swap"
)

var unswapCmd = &cobra.Command{
	Use:   "unswap <group>",
	Short: "Swap a group to no config",
	Long: `Removes the materialized files at the group's destination path and
clears the active-config pointer. The stored copy of the config
remains in the group's store.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnswap,
}

func init() {
	rootCmd.AddCommand(unswapCmd)
}

func runUnswap(cmd *cobra.Command, args []string) error {
	name := args[0]

	group, err := loadGroup(name)
	if err != nil {
		return err
	}

	if err := swap.Unswap(group); err != nil {
		return err
	}

	_ = auditLog().LogEvent(audit.EventUnswap, name, "")

	logSuccess("Unswapped group %s", name)
	return nil
}
