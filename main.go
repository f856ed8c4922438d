package main

import (
	"os"

	"github.com/conswap/conswap/cmd"
	"github.com/conswap/conswap/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
