package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/audit"
	cerrors "github.com/conswap/conswap/internal/errors"
	"github.com/conswap/conswap/internal/logging"
	"github.com/conswap/conswap/internal/repair"
)

var fixVerbose bool

var fixCmd = &cobra.Command{
	Use:   "fix [group]",
	Short: "Reconcile group descriptors with their store directories",
	Long: `Compares each group's descriptor against the config directories
actually present in its store and repairs mismatches:

  - configs on disk but missing from the descriptor are added
  - descriptor entries with no directory are dropped
  - an active pointer referencing a missing config is cleared
  - an unreadable descriptor is rebuilt from the store listing

The trash area and the destination path are never touched, and no
config files are ever deleted. Safe to run repeatedly.

Without a group argument, every group under the root is repaired.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().BoolVarP(&fixVerbose, "verbose", "v", false, "Show the reason for each change")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	var names []string
	if len(args) == 1 {
		if !reg().Exists(args[0]) {
			return cerrors.GroupNotFound(args[0])
		}
		names = args
	} else {
		all, err := reg().Names()
		if err != nil {
			return err
		}
		names = all
	}

	if len(names) == 0 {
		logInfo("No groups found; nothing to fix")
		return nil
	}

	for _, name := range names {
		dir, err := paths().GroupDir(name)
		if err != nil {
			return err
		}

		logging.Debug("fixing group", "name", name)

		report, err := repair.Fix(dir)
		if err != nil {
			return err
		}

		printReport(report)

		if !report.Empty() {
			_ = auditLog().LogEvent(audit.EventFix, name, fmt.Sprintf("%d change(s)", len(report.Changes)))
		}
	}

	return nil
}

func printReport(report *repair.Report) {
	if report.Empty() {
		logInfo("%s: no changes", report.Group)
		return
	}

	logSuccess("%s: %d change(s)", report.Group, len(report.Changes))
	for _, change := range report.Changes {
		line := string(change.Kind)
		if change.Config != "" {
			line += " " + change.Config
		}
		if fixVerbose && change.Reason != "" {
			line += " (" + change.Reason + ")"
		}
		fmt.Printf("  %s\n", line)
	}

	if report.NeedsReconfigure {
		logWarning("%s: description and dest_path could not be recovered; set them with: conswap configure %s <field> <value>",
			report.Group, report.Group)
	}
}
