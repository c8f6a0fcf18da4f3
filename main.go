package main

import (
	"fmt"
	"os"

	"codeberg.org/miketth/hyprtap/pkg/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}
