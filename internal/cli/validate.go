package cli

import (
	"github.com/spf13/cobra"

	"github.com/sdejongh/sizesweep/pkg/models"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a scan root or size threshold without scanning",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path DIR",
		Short: "Check that DIR exists, is a directory and is readable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], func(a *app) models.ValidationOutcome {
				return a.engine.ValidatePath(args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "limit MB",
		Short: "Check that MB is a usable size threshold (0 < MB <= 10000)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], func(a *app) models.ValidationOutcome {
				return a.engine.ValidateSizeLimit(args[0])
			})
		},
	})

	return cmd
}

func runValidate(cmd *cobra.Command, subject string, check func(*app) models.ValidationOutcome) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	outcome := check(a)
	if !a.cfg.Output.Quiet || !outcome.Valid {
		if err := a.formatter.Validation(a.out, subject, outcome); err != nil {
			return err
		}
	}

	if !outcome.Valid {
		return &ExitError{Code: 2}
	}
	return nil
}
