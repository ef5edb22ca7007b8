package main

import (
	"os"

	"github.com/trio-sh/academy-builder-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
