package main

import (
	"fmt"
	"os"

	"github.com/msnoigrs/dicsort/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dicsort: %s\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
