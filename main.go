package main

import (
	"os"

	"github.com/abaqira/guidebook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
