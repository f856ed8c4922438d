package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/conswap/conswap/internal/app"
	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/logging"
)

var (
	debug      bool
	jsonOutput bool
	rootDir    string
)

var rootCmd = &cobra.Command{
	Use:   "conswap",
	Short: "Manage and swap configuration files",
	Long: `conswap manages named groups of interchangeable configuration
directories and atomically swaps which one occupies a group's
destination path.

Each group keeps a managed store of configs, a trash area for
soft-deleted configs, and a human-editable group.toml descriptor
tracking which config is active.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(debug, jsonOutput, os.Stderr)

		if rootDir != "" {
			app.SetDefault(app.New(app.WithPaths(layout.NewPaths(rootDir))))
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Print debug messages")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output debug logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "State root directory (default: $CONSWAP_ROOT or the user config dir)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
