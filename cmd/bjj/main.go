package main

import (
	"os"

	"github.com/f3rmion/babyjubjub/cmd/bjj/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
