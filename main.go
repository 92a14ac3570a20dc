package main

import (
	"os"

	"github.com/parladev/parla/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
