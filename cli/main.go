package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/regforge/internal/cli"
	"github.com/trebuchet-org/regforge/internal/config"
)

// Set at build time through -ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
