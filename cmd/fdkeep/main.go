package main

import (
	"os"

	"github.com/fdkeep-dev/fdkeep/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
