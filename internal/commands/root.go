package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifewbs/lifewbs/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lifewbs",
		Short:   "Life-as-a-project ledger",
		Long:    "lifewbs books a life as a ¥10B project and records monthly gains and losses against it.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newRecordCommand(),
		newReportCommand(),
		newEditCommand(),
		newExportCommand(),
		newImportCommand(),
	)

	return rootCmd
}
