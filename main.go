package main

import (
	"os"

	"github.com/ftl/bandkeeper/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
