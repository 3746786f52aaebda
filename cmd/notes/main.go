package main

import (
	"os"

	"github.com/idilsaglam/notes/internal/cli"
)

var version = "dev"

func main() {
	// Exit with the editor's status so callers can chain on it.
	os.Exit(cli.Run(os.Args[1:], version))
}
