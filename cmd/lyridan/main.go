package main

import (
	"os"

	"github.com/Elevatorisbest/Lyridan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
