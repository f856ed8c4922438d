package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/layout"
)

var (
	listGroup   string
	listVerbose bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing groups",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listGroup, "group", "g", "", "Group to list configs for (none means list groups)")
	listCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "Show more details")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listGroup != "" {
		return listConfigs(listGroup)
	}
	return listGroups()
}

func listGroups() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if listVerbose {
		fmt.Fprintln(w, "NAME\tDESCRIPTION\tACTIVE\tCONFIGS\tDEST")
		fmt.Fprintln(w, "----\t-----------\t------\t-------\t----")
	} else {
		fmt.Fprintln(w, "NAME\tDESCRIPTION\tACTIVE\tCONFIGS")
		fmt.Fprintln(w, "----\t-----------\t------\t-------")
	}

	count := 0
	for summary := range reg().Groups() {
		count++

		if summary.Err != nil {
			fmt.Fprintf(w, "%s\t%s\t\t\n", summary.Name, "(descriptor unreadable; run: conswap fix)")
			continue
		}

		active := summary.Active
		if active == "" {
			active = "-"
		}

		if listVerbose {
			dest := summary.DestPath
			if dest == "" {
				dest = "(not configured)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				summary.Name, summary.Desc, active, summary.Configs, dest)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
				summary.Name, summary.Desc, active, summary.Configs)
		}
	}

	if count == 0 {
		logInfo("No groups found. Create one with: conswap new <name> --dest <path>")
		return nil
	}

	return w.Flush()
}

func listConfigs(name string) error {
	group, err := loadGroup(name)
	if err != nil {
		return err
	}

	header := group.Name
	if group.Desc.Desc != "" {
		header += " - " + group.Desc.Desc
	}
	dest := group.Desc.DestPath
	if dest == "" {
		dest = "(not configured)"
	}
	fmt.Printf("%s → swaps to %s\n", header, dest)

	st := storeFor(group)

	count := 0
	for config := range st.Configs() {
		count++
		marker := " "
		if config == group.Desc.Active {
			marker = "*"
		}

		if listVerbose {
			path, _ := layout.StorePath(group.Dir, config)
			size, _ := layout.DirSize(path)
			fmt.Printf(" %s %s @ %s : %s\n", marker, config, path, layout.FormatSize(size))
		} else {
			fmt.Printf(" %s %s\n", marker, config)
		}
	}
	fmt.Printf("%d config(s)\n", count)

	trashed := 0
	for config := range st.Trashed() {
		if trashed == 0 {
			fmt.Println("trash:")
		}
		trashed++
		fmt.Printf("   %s\n", config)
	}

	return nil
}
