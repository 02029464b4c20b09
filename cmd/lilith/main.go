package main

import (
	"os"

	"github.com/lilith-lang/lilith/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
