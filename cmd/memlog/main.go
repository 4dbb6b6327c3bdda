// Package main is the entry point for the memlog CLI.
package main

import (
	"os"

	"github.com/memolab/memlog-mcp/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
