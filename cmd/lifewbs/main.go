package main

import (
	"os"

	"github.com/lifewbs/lifewbs/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
