package main

import (
	"fmt"
	"os"

	"wingetenhance/internal/cli"
	"wingetenhance/internal/tui/styles"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorMsg.Render("Error:"), err)
		os.Exit(1)
	}
}
