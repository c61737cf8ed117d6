package main

import (
	"os"

	"github.com/katalvlaran/zetafn/cmd/zetafn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
