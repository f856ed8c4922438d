package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/audit"
	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/logging"
	"github.com/conswap/conswap/internal/swap"
	"github.com/conswap/conswap/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick <group>",
	Short: "Interactive config picker",
	Long: `Opens an interactive TUI for selecting a config and swapping it into
the group's destination path.

Use arrow keys or j/k to navigate, / to filter, Enter to swap.`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	name := args[0]

	group, err := loadGroup(name)
	if err != nil {
		return err
	}

	logging.Debug("picker mode started", "group", name)

	var entries []tui.ConfigEntry
	for config := range storeFor(group).Configs() {
		path, err := layout.StorePath(group.Dir, config)
		if err != nil {
			continue
		}
		size, _ := layout.DirSize(path)
		entries = append(entries, tui.ConfigEntry{
			Name:   config,
			Active: config == group.Desc.Active,
			Size:   size,
		})
	}

	if len(entries) == 0 {
		logInfo("No configs in group %s. Install one with: conswap install %s local <path>", name, name)
		return nil
	}

	result, err := tui.RunPicker(name, entries)
	if err != nil {
		return err
	}

	logging.Debug("picker result", "action", result.Action, "config", result.Config)

	if result.Action != tui.ActionSwap {
		return nil
	}

	if err := swap.Swap(group, result.Config); err != nil {
		return err
	}

	_ = auditLog().LogEvent(audit.EventSwap, name, "config="+result.Config)

	logSuccess("Swapped group %s to config %s", name, result.Config)
	return nil
}
