package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"wingetenhance/internal/manifest"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest>",
		Short: "Report missing fields without writing",
		Long: `Run the enhancement without writing and report which fields would be added.

Exits non-zero when the manifest is not already complete, or when it
could not be enhanced at all.

Examples:
  wingetenhance check invowk.invowk.installer.yaml`,
		Args: manifestArg,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	plan, err := manifest.NewEnhancer(cfg.Fields(), logger.WithPath(path)).Plan(path)
	if err != nil {
		return err
	}

	if !plan.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: all fields present\n", path)
		return nil
	}

	missing := trimKeys(plan.Result.Presence.Missing())
	fmt.Fprintf(cmd.OutOrStdout(), "%s: would add %s\n", path, strings.Join(missing, ", "))
	return fmt.Errorf("%w: %s", ErrNeedsEnhancement, path)
}
