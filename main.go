package main

import (
	"os"

	"github.com/signalbay/switchctl/cmd"
	"github.com/signalbay/switchctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
