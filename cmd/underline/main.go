// Package main is the entry point for the underline CLI.
package main

import (
	"os"

	"github.com/gogpu/underline/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)
	if err := rootCmd.Execute(); err != nil {
		cli.NewLogger(os.Stderr, false).Error("command failed", cli.FieldError, err)
		return 1
	}
	return 0
}
