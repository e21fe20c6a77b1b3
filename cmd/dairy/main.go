// Package main provides the dairy CLI application.
// dairy runs the farm aggregation reports over the built-in sample scenarios.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
