package main

import (
	"os"

	"github.com/msto63/tidystring/cmd/tidystr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
