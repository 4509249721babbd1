package main

import (
	"os"

	"github.com/shellingo/shellingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
