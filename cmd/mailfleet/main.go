/*
Package main provides the CLI entry point for mailfleet.
*/
package main

import (
	"os"

	"github.com/mailfleet/mailfleet/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
