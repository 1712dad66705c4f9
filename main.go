package main

import (
	"os"

	"github.com/sampath-kumaramd/mathlearn-project/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
