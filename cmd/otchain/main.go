// SPDX-License-Identifier: EPL-2.0

// Package main is the entry point for the otchain CLI.
//
// Usage:
//
//	otchain <command> [args]
//
// Commands:
//
//	chain  - Chain samples from a directory into one sliced output file
//	batch  - Process each sample individually
//	info   - Display information about samples without processing
package main

import (
	"fmt"
	"os"

	"github.com/ik5/otchain/cmd/otchain/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
