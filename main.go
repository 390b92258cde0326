package main

import (
	"os"

	"github.com/abhisek/designlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
