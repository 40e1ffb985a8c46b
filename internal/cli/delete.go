package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteFlags selectionFlags

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [PATH...]",
		Short: "Delete the selected files",
		Long: `Delete the selected files. Every path is audited first; if any path is
missing or cannot be modified, nothing is deleted. Once the audit passes each
file is deleted independently and failures are reported per file.

Exit status: 0 all deleted, 1 some failed, 2 refused or all failed.`,
		Example: `  sizesweep delete /data/old.iso /data/dump.tar
  sizesweep delete --from-scan /data --limit 500 --type archive --days-old 90 --all`,
		RunE: runDelete,
	}

	addSelectionFlags(cmd, &deleteFlags, true)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	paths, err := a.resolveSelection(cmd, args, &deleteFlags)
	if err != nil {
		return err
	}

	ok, err := confirm(cmd, fmt.Sprintf("Delete %d files? This cannot be undone.", len(paths)), deleteFlags.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.errOut, "Aborted, nothing was deleted.")
		return nil
	}

	report := a.engine.DeleteReport(paths)
	if err := a.renderReport(report); err != nil {
		return err
	}
	return exitForStatus(report.Status())
}
