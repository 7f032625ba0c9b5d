package main

import (
	"os"

	"github.com/msto63/netext/cmd/netext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
