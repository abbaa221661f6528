// Package main is the entry point for the prj CLI tool.
package main

import (
	"os"

	"github.com/prjtool/prj/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
