package main

import (
	"os"

	"github.com/shirai91/mathfun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
