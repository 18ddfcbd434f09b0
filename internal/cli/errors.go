package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// ErrArgument is matched by every ArgumentError
	ErrArgument = errors.New("wrong number of arguments")

	// ErrNeedsEnhancement is returned by check when fields would be inserted
	ErrNeedsEnhancement = errors.New("manifest needs enhancement")
)

// ArgumentError reports a command invoked without exactly one manifest path
type ArgumentError struct {
	Got   int
	Usage string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: expected 1 manifest path, got %d\nUsage: %s", ErrArgument, e.Got, e.Usage)
}

func (e *ArgumentError) Unwrap() error { return ErrArgument }

// manifestArg accepts exactly one positional argument
func manifestArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &ArgumentError{Got: len(args), Usage: cmd.UseLine()}
	}
	return nil
}
