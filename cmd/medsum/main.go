// Package main is the entry point for the medsum binary.
package main

import (
	"os"

	"github.com/Shimizu-Technology/medsum/internal/cli"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	if err := cli.NewRootCmd(Version).Execute(); err != nil {
		os.Exit(1)
	}
}
