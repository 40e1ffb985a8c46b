package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
	Output     string
	NoColor    bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/sizesweep/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"log debug details to stderr",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
	cmd.PersistentFlags().StringVarP(&globalFlags.Output, "output", "o", "", "output format: human, json (default from config)")
	cmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable coloured output")

	cmd.PersistentFlags().StringVar(&globalFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.PersistentFlags().StringVar(&globalFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
}

// filterFlags holds the attribute filter flags shared by several commands
type filterFlags struct {
	Types         []string
	MaxSizeMB     float64
	DaysOld       int
	IncludeHidden bool
}

var filterFlagNames = []string{"type", "max-size", "days-old", "include-hidden"}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringSliceVarP(&f.Types, "type", "t", []string{}, "keep only these categories: video, image, document, archive, other")
	cmd.Flags().Float64Var(&f.MaxSizeMB, "max-size", 0, "exclude files larger than this many MB (0 = unbounded)")
	cmd.Flags().IntVar(&f.DaysOld, "days-old", 0, "keep only files last modified at least this many days ago")
	cmd.Flags().BoolVar(&f.IncludeHidden, "include-hidden", false, "keep files whose name starts with a dot")
}

// scanFlags holds the flags that drive a scan
type scanFlags struct {
	Limit   string
	Exclude []string
	filter  filterFlags
}

func addScanFlags(cmd *cobra.Command, f *scanFlags) {
	cmd.Flags().StringVarP(&f.Limit, "limit", "l", "", "minimum file size in MB (default from config, 100)")
	cmd.Flags().StringSliceVar(&f.Exclude, "exclude", []string{}, "glob patterns to exclude (replaces the configured list)")
	addFilterFlags(cmd, &f.filter)
}

// selectionFlags holds the flags choosing the targets of a bulk operation
type selectionFlags struct {
	FromScan string
	All      bool
	Yes      bool
	scan     scanFlags
}

func addSelectionFlags(cmd *cobra.Command, f *selectionFlags, confirmable bool) {
	cmd.Flags().StringVar(&f.FromScan, "from-scan", "", "select files by scanning this directory")
	cmd.Flags().BoolVar(&f.All, "all", false, "select every file the scan (and filter) keeps")
	if confirmable {
		cmd.Flags().BoolVarP(&f.Yes, "yes", "y", false, "do not ask for confirmation")
	}
	addScanFlags(cmd, &f.scan)
}
