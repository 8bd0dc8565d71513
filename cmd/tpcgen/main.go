// Package main is the entry point for the tpcgen binary.
package main

import (
	"os"

	"tpcgen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
