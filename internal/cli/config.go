package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"wingetenhance/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect wingetenhance configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Print the values that would be injected, as TOML.

Without --config the built-in defaults are shown. The output can be
saved and passed back with --config.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	})

	return configCmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	out, err := cfg.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	source := "defaults"
	if cfg.Path != "" {
		source = cfg.Path
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, out)
	return nil
}
