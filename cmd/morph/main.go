package main

import (
	"os"

	"github.com/inflectlab/morph/internal/cli"
)

var version = "dev"

func main() {
	c := cli.New(version)
	if err := c.Run(); err != nil {
		os.Exit(1)
	}
}
