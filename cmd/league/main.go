package main

import (
	"os"

	"github.com/Iron-Ham/leagueroster/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
