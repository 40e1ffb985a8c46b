package cli

import (
	"github.com/spf13/cobra"
)

var auditFlags selectionFlags

// NewAuditCommand creates the audit command
func NewAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [PATH...]",
		Short: "Check that files can be deleted or moved",
		Long: `Report every selected path that is missing, not writable, or whose
containing directory is not writable. Nothing is modified.`,
		RunE: runAudit,
	}

	addSelectionFlags(cmd, &auditFlags, false)

	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	paths, err := a.resolveSelection(cmd, args, &auditFlags)
	if err != nil {
		return err
	}

	problems := a.engine.AuditPermissions(paths)
	if !a.cfg.Output.Quiet || len(problems) > 0 {
		if err := a.formatter.Audit(a.out, len(paths), problems); err != nil {
			return err
		}
	}

	if len(problems) > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
