package main

import (
	"os"

	"github.com/rustyeddy/klineviz/cmd/klineviz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
