package main

import (
	"os"

	"github.com/SimranYelave/Car-Rental-System/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
