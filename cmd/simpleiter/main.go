// SPDX-License-Identifier: MIT

// Command simpleiter solves diagonally dominant linear systems with the
// simple-iteration method in arbitrary-precision decimal arithmetic.
package main

import (
	"os"

	"github.com/katalvlaran/simpleiter/cmd/simpleiter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
