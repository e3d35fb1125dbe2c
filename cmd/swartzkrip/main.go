package main

import (
	"os"

	"github.com/WADEPAR6/swartzkrip/internal/config"
)

var version = "dev"

func main() {
	os.Exit(run(config.Load(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
