package main

import (
	"os"

	"resume-intel/cmd/resumectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
