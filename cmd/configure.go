package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/registry"
	"github.com/conswap/conswap/internal/tui"
)

var configureCmd = &cobra.Command{
	Use:   "configure <name> [field value]",
	Short: "Configure settings of a group",
	Long: `Updates a group's descriptor. With field and value arguments, sets
exactly that field (desc or dest_path). Without them, an interactive
wizard steps through the fields.

Changing dest_path never moves or re-swaps files; it only changes
where future swaps will target.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 || len(args) == 3 {
			return nil
		}
		return fmt.Errorf("accepts <name> or <name> <field> <value>, received %d arg(s)", len(args))
	},
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	name := args[0]

	if len(args) == 3 {
		field, value := args[1], args[2]
		if err := reg().Configure(name, field, value); err != nil {
			return err
		}
		logSuccess("Updated %s of group %s", field, name)
		return nil
	}

	return runConfigureWizard(name)
}

func runConfigureWizard(name string) error {
	group, err := loadGroup(name)
	if err != nil {
		return err
	}

	fields := []tui.Field{
		{Name: registry.FieldDesc, Current: group.Desc.Desc},
		{Name: registry.FieldDestPath, Current: group.Desc.DestPath},
	}

	result, err := tui.RunWizard(name, fields)
	if err != nil {
		return err
	}
	if result.Cancelled {
		logInfo("Configuration cancelled; nothing changed")
		return nil
	}
	if len(result.Values) == 0 {
		logInfo("No fields changed")
		return nil
	}

	for field, value := range result.Values {
		if err := reg().Configure(name, field, value); err != nil {
			return err
		}
		logSuccess("Updated %s of group %s", field, name)
	}

	return nil
}
