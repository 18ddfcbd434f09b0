package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"wingetenhance/internal/manifest"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Show a summary of a manifest",
		Long: `Decode a manifest and print its package details and enhancement fields.

Examples:
  wingetenhance inspect invowk.invowk.installer.yaml`,
		Args: manifestArg,
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := manifest.InspectFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Package: %s\n", orMissing(s.PackageIdentifier))
	fmt.Fprintf(out, "Version: %s\n", orMissing(s.PackageVersion))
	fmt.Fprintf(out, "Manifest: %s %s\n", orMissing(s.ManifestType), s.ManifestVersion)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "MinimumOSVersion: %s\n", orMissing(s.MinimumOSVersion))
	fmt.Fprintf(out, "Platform: %s\n", orMissing(strings.Join(s.Platform, ", ")))
	fmt.Fprintf(out, "Commands: %s\n", orMissing(strings.Join(s.Commands, ", ")))

	arches := make([]string, 0, len(s.Installers))
	for _, inst := range s.Installers {
		if inst.Architecture != "" {
			arches = append(arches, inst.Architecture)
		}
	}
	fmt.Fprintf(out, "Installers: %d", len(s.Installers))
	if len(arches) > 0 {
		fmt.Fprintf(out, " (%s)", strings.Join(arches, ", "))
	}
	fmt.Fprintln(out)
	return nil
}

func orMissing(v string) string {
	if v == "" {
		return "(missing)"
	}
	return v
}
