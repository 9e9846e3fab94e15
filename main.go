package main

import (
	"os"

	"github.com/SanikaB-Works/cursor-ecom-project/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
