package main

import (
	"os"

	"github.com/cleared-dev/sietosru/internal/commands"
	"github.com/cleared-dev/sietosru/internal/console"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		console.Error(os.Stderr, err)
		os.Exit(1)
	}
}
