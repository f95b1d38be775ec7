// Command cli operates the back office from a terminal: it runs migrations,
// registers persons, opens and blocks accounts, moves money and prints
// statements against the configured database.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := execute(os.Stdout, os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		os.Exit(1)
	}
}
