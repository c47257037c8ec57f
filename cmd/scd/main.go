// Package main is the entry point for the scd CLI tool.
package main

import (
	"os"

	"github.com/tbruun/scenedoctor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
