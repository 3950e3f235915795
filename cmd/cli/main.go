// Package main is the entry point for the tariff-restrictions CLI.
package main

import (
	"os"

	"tariff-restrictions/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
