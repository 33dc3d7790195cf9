package main

import (
	"os"

	"github.com/edgeai/edgeai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
