package main

import (
	"os"

	"github.com/dyeshell/dye/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
