// Package main provides the proftree command-line interface.
package main

import (
	"os"

	"github.com/leapstack-labs/proftree/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
