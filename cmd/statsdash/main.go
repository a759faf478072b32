package main

import (
	"fmt"
	"os"

	cliadapter "github.com/example/statsdash/internal/adapters/cli"
	"github.com/example/statsdash/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd("")

	err := rootCmd.Execute()
	cli.Shutdown()

	if err != nil {
		fmt.Fprintln(os.Stderr, cliadapter.FormatError(err))
		os.Exit(1)
	}
}
