package main

import (
	"os"

	"stegamoji/cmd/stegamoji/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
