package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdejongh/sizesweep/internal/platform"
)

type moveCommandFlags struct {
	selection   selectionFlags
	Destination string
}

var moveFlags moveCommandFlags

// NewMoveCommand creates the move command
func NewMoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [PATH...] --to DIR",
		Short: "Move the selected files into a directory",
		Long: `Move the selected files into DIR, keeping their names. DIR must exist and
be writable, and every path is audited first; on any problem nothing is moved.
A file whose name already exists in DIR is reported and left in place.

Exit status: 0 all moved, 1 some failed, 2 refused or all failed.`,
		Example: `  sizesweep move /data/a.mkv /data/b.mkv --to /archive
  sizesweep move --from-scan /data --type video --all --to /archive --yes`,
		RunE: runMove,
	}

	cmd.Flags().StringVar(&moveFlags.Destination, "to", "", "destination directory (required)")
	cmd.MarkFlagRequired("to")
	addSelectionFlags(cmd, &moveFlags.selection, true)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	paths, err := a.resolveSelection(cmd, args, &moveFlags.selection)
	if err != nil {
		return err
	}
	destination := moveFlags.Destination
	if strings.TrimSpace(destination) != "" {
		destination = platform.NormalizePath(destination)
	}

	question := fmt.Sprintf("Move %d files to %s?", len(paths), destination)
	ok, err := confirm(cmd, question, moveFlags.selection.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.errOut, "Aborted, nothing was moved.")
		return nil
	}

	report := a.engine.MoveReport(paths, destination)
	if err := a.renderReport(report); err != nil {
		return err
	}
	return exitForStatus(report.Status())
}
