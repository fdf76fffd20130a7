// Package main provides the CLI entrypoint for typeprobe.
//
// typeprobe classifies runtime values by kind:
//   - run: evaluates the built-in example suite and prints the results
//   - types: prints coarse and real kinds of every value in a YAML file
//   - count: prints how many values of each real kind a YAML file holds
//   - check: reports whether the values share a coarse kind and whether their real kinds are unique
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "typeprobe:", err)
		os.Exit(1)
	}
}
