package main

import (
	"os"

	"github.com/firefly-engineering/skillify/cmd"
	"github.com/firefly-engineering/skillify/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
