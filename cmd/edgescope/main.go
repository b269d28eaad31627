package main

import (
	"os"

	"github.com/edgescope/edgescope/cmd/edgescope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
