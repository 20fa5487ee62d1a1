package main

import (
	"os"

	"github.com/bnema/pareto-trade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
