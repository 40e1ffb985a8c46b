package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sdejongh/sizesweep/internal/platform"
	"github.com/sdejongh/sizesweep/pkg/config"
	"github.com/sdejongh/sizesweep/pkg/logging"
	"github.com/sdejongh/sizesweep/pkg/models"
	"github.com/sdejongh/sizesweep/pkg/output"
	"github.com/sdejongh/sizesweep/pkg/scan"
	"github.com/sdejongh/sizesweep/pkg/sweep"
	"github.com/sdejongh/sizesweep/pkg/validate"
)

// app is the per-invocation wiring shared by the commands
type app struct {
	cfg       *config.Config
	logger    logging.Logger
	formatter output.Formatter
	engine    *sweep.Engine
	out       io.Writer
	errOut    io.Writer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyGlobalFlags(cfg); err != nil {
		return nil, err
	}

	logger, err := createLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	out := cmd.OutOrStdout()
	formatter, err := output.New(cfg.Output.Format, output.Options{
		Color: cfg.Output.Color && output.IsTerminal(out),
		Width: output.TerminalWidth(out),
	})
	if err != nil {
		logger.Close()
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		formatter: formatter,
		engine:    sweep.NewLocalEngine(logger),
		out:       out,
		errOut:    cmd.ErrOrStderr(),
	}, nil
}

// Close releases the logger
func (a *app) Close() error {
	return a.logger.Close()
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyGlobalFlags overrides config values with command-line flags
func applyGlobalFlags(cfg *config.Config) error {
	if globalFlags.Output != "" {
		cfg.Output.Format = globalFlags.Output
	}
	if globalFlags.NoColor {
		cfg.Output.Color = false
	}
	if globalFlags.Quiet {
		cfg.Output.Quiet = true
	}

	if globalFlags.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.File = globalFlags.LogFile
	}
	if globalFlags.LogFormat != "" {
		cfg.Logging.Format = globalFlags.LogFormat
	}
	if globalFlags.LogLevel != "" {
		cfg.Logging.Level = globalFlags.LogLevel
	}

	return cfg.Validate()
}

// createLogger creates a logger based on configuration
func createLogger(cfg *config.Config, stderr io.Writer) (logging.Logger, error) {
	if globalFlags.Verbose {
		return logging.NewWriterLogger(stderr, logging.FormatText, logging.DebugLevel), nil
	}

	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	format := logging.ParseFormat(cfg.Logging.Format)
	level := logging.ParseLevel(cfg.Logging.Level)
	if cfg.Logging.File == "" {
		return logging.NewWriterLogger(stderr, format, level), nil
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.Logging.File,
		Format:     format,
		Level:      level,
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	})
}

// showIndicator reports whether a spinner may be drawn on stderr
func (a *app) showIndicator() bool {
	return !a.cfg.Output.Quiet && !globalFlags.Verbose &&
		a.formatter.Name() == "human" && output.IsTerminal(a.errOut)
}

// scanLimit returns the threshold from the flag, or the configured one
func (a *app) scanLimit(f *scanFlags) (float64, error) {
	if f.Limit == "" {
		return a.cfg.Scan.LimitMB, nil
	}
	return validate.ParseSizeLimit(f.Limit)
}

// filterSpec merges the configured preset with the filter flags that were set.
// active is false when neither defines a rule, in which case no filter runs.
func (a *app) filterSpec(cmd *cobra.Command, f *filterFlags) (spec models.FilterSpec, active bool, err error) {
	spec = a.cfg.Filter
	active = !spec.IsZero()

	flags := cmd.Flags()
	for _, name := range filterFlagNames {
		if flags.Changed(name) {
			active = true
		}
	}

	if flags.Changed("type") {
		spec.FileTypes = make([]models.FileCategory, 0, len(f.Types))
		for _, raw := range f.Types {
			category, err := models.ParseCategory(raw)
			if err != nil {
				return spec, false, &models.ValidationError{Field: "type", Message: err.Error()}
			}
			spec.FileTypes = append(spec.FileTypes, category)
		}
	}
	if flags.Changed("max-size") {
		spec.MaxSizeMB = f.MaxSizeMB
	}
	if flags.Changed("days-old") {
		spec.DaysOld = f.DaysOld
	}
	if flags.Changed("include-hidden") {
		spec.IncludeHidden = f.IncludeHidden
	}

	if err := config.ValidateFilter(spec); err != nil {
		return spec, false, err
	}
	return spec, active, nil
}

// runScan scans root with the command's scan flags, then filters when a
// filter is active. filtered is nil when no filter ran.
func (a *app) runScan(cmd *cobra.Command, root string, f *scanFlags) (result *models.ScanResult, filtered *models.FilterResult, err error) {
	limit, err := a.scanLimit(f)
	if err != nil {
		return nil, nil, err
	}
	spec, active, err := a.filterSpec(cmd, &f.filter)
	if err != nil {
		return nil, nil, err
	}

	opts := scan.Options{Exclude: a.cfg.Scan.Exclude}
	if cmd.Flags().Changed("exclude") {
		opts.Exclude = f.Exclude
	}

	output.WithIndicator(a.errOut, a.showIndicator(), "Scanning "+root, func() {
		result, err = a.engine.ScanWithOptions(root, limit, opts)
	})
	if err != nil {
		return nil, nil, err
	}

	if active {
		filtered = a.engine.Filter(result.Entries, spec)
	}
	return result, filtered, nil
}

// resolveSelection combines explicit path arguments with --from-scan results
// into an absolute, deduplicated list
func (a *app) resolveSelection(cmd *cobra.Command, args []string, f *selectionFlags) ([]string, error) {
	paths := append([]string{}, args...)

	if f.FromScan != "" {
		if !f.All {
			return nil, &models.ValidationError{
				Field:   "selection",
				Message: "--from-scan selects files only together with --all",
			}
		}
		result, filtered, err := a.runScan(cmd, f.FromScan, &f.scan)
		if err != nil {
			return nil, err
		}
		entries := result.Entries
		if filtered != nil {
			entries = filtered.Entries
		}
		paths = append(paths, models.EntryPaths(entries)...)
	}

	if len(paths) == 0 {
		return nil, &models.ValidationError{
			Field:   "selection",
			Message: "no paths selected (pass paths or --from-scan DIR --all)",
		}
	}

	return platform.NormalizeSelection(paths)
}

// renderReport prints report unless quiet output hides a complete success
func (a *app) renderReport(report *models.OperationReport) error {
	if a.cfg.Output.Quiet && report.Status() == models.StatusSuccess {
		return nil
	}
	return a.formatter.Report(a.out, report)
}
