package main

import (
	"os"

	"github.com/apexhire/screener/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
