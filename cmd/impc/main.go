package main

import (
	"os"

	"github.com/npillmayer/imp/cmd/impc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
