package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errConfirmationRequired is returned when no terminal can answer the prompt
var errConfirmationRequired = errors.New("confirmation required: rerun with --yes to proceed without a terminal")

// confirm asks a yes/no question on the terminal. assumeYes skips the prompt;
// without a terminal on stdin the operation is refused.
func confirm(cmd *cobra.Command, question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}

	in := cmd.InOrStdin()
	file, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return false, errConfirmationRequired
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)
	return readConfirmation(in)
}

// readConfirmation reads one answer line; only "y" and "yes" accept
func readConfirmation(r io.Reader) (bool, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
