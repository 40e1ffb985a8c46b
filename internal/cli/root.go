package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the sizesweep command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sizesweep",
		Short: "Find large files and delete or move them in bulk",
		Long: `sizesweep scans a directory tree for files above a size threshold,
narrows the list by type, age and hidden status, and deletes or moves the
selection. Bulk operations are refused as a whole when any target fails the
permission pre-flight, and report failures per file otherwise.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(NewScanCommand())
	rootCmd.AddCommand(NewAuditCommand())
	rootCmd.AddCommand(NewDeleteCommand())
	rootCmd.AddCommand(NewMoveCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
