package main

import (
	"os"

	"github.com/suparena/dynamics/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
