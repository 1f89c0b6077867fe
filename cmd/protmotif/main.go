package main

import (
	"os"

	"protmotif/cmd/protmotif/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
