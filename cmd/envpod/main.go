package main

import (
	"os"

	"github.com/anikchand461/envpod/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
