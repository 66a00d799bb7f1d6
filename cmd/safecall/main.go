package main

import (
	"os"

	"github.com/ib-77/safecall/cmd/safecall/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
