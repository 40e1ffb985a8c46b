package cli

import (
	"github.com/spf13/cobra"

	"github.com/sdejongh/sizesweep/pkg/output"
)

type scanCommandFlags struct {
	scan  scanFlags
	Stats bool
}

var scanCmdFlags scanCommandFlags

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "List files at or above a size threshold",
		Long: `Recursively scan DIR and list every regular file whose size is at least
the threshold, largest first. Optional filters narrow the list by category,
maximum size, age and hidden status.`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	addScanFlags(cmd, &scanCmdFlags.scan)
	cmd.Flags().BoolVar(&scanCmdFlags.Stats, "stats", false, "add a per-category breakdown")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	result, filtered, err := a.runScan(cmd, args[0], &scanCmdFlags.scan)
	if err != nil {
		return err
	}

	if a.cfg.Output.Quiet {
		return nil
	}
	return a.formatter.Scan(a.out, output.ScanView{
		Result:   result,
		Filtered: filtered,
		Stats:    scanCmdFlags.Stats,
	})
}
