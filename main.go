package main

import (
	"os"

	"github.com/lexikon-ai/lexikon/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
