package main

import (
	"os"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
