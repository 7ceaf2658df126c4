// Package main is the entry point for the aliendict CLI.
package main

import (
	"os"

	"github.com/puneeth6796/alien-dictionary/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
