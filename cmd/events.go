package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	cerrors "github.com/conswap/conswap/internal/errors"
)

var eventsCmd = &cobra.Command{
	Use:   "events <group>",
	Short: "Show the lifecycle event log of a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !reg().Exists(name) {
		return cerrors.GroupNotFound(name)
	}

	events, err := auditLog().Events(name)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		logInfo("No events recorded for group %s", name)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tEVENT\tDETAILS")
	for _, event := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			event.Timestamp.Format("2006-01-02 15:04:05"), event.Type, event.Details)
	}
	return w.Flush()
}
