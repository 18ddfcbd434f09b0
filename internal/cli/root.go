package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"wingetenhance/internal/config"
	"wingetenhance/internal/logging"
	"wingetenhance/internal/manifest"
	"wingetenhance/internal/tui"
	"wingetenhance/internal/tui/styles"
)

var (
	version = "dev"

	configPath  string
	verbose     bool
	logFormat   string
	dryRun      bool
	interactive bool
)

// confirmFunc asks the user whether to write a plan; replaced in tests
var confirmFunc = tui.Confirm

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wingetenhance <manifest>",
		Short: "Add missing fields to a generated winget installer manifest",
		Long: `wingetenhance patches a generated winget installer manifest in place,
adding the fields the generator cannot emit:

  MinimumOSVersion   inserted after the PackageVersion line
  Platform           inserted after the PackageVersion line
  Commands           inserted before the Installers line

Fields already present are left alone and every other line is kept
byte for byte, so running it twice is a no-op. The file is only written
when all three fields are present afterwards.

Examples:
  wingetenhance manifests/i/invowk/invowk/0.4.0/invowk.invowk.installer.yaml
  wingetenhance --dry-run invowk.invowk.installer.yaml
  wingetenhance -i invowk.invowk.installer.yaml`,
		Version:       version,
		Args:          manifestArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEnhance,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file overriding the injected values")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: pretty or json")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the enhanced manifest instead of writing it")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Preview the changes and confirm before writing")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

// Execute runs the CLI
func Execute() error {
	return newRootCmd().Execute()
}

// setup loads the configuration and builds the logger for a command run
func setup(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	format := cfg.Log.Format
	if logFormat != "" {
		format = logFormat
	}
	logger := logging.NewLogger(logging.Options{
		Level:   cfg.Log.Level,
		Format:  format,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	})
	return cfg, logger, nil
}

func runEnhance(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	enhancer := manifest.NewEnhancer(cfg.Fields(), logger.WithPath(path))

	plan, err := enhancer.Plan(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprint(out, plan.Content())
		return nil
	}

	if !plan.Changed() {
		fmt.Fprintf(out, "%s already has all fields, nothing to do\n", path)
		return nil
	}

	if interactive {
		ok, err := confirmFunc(plan)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	if err := enhancer.Apply(plan); err != nil {
		return err
	}

	fmt.Fprintln(out, styles.SuccessMsg.Render(fmt.Sprintf("Enhanced %s: added %s",
		path, strings.Join(trimKeys(plan.Result.Presence.Missing()), ", "))))
	return nil
}

// trimKeys drops the trailing colon from field keys
func trimKeys(keys []string) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = strings.TrimSuffix(k, ":")
	}
	return names
}
