// Command trendlab records numeric samples and fits a trend line over them.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/trendlab/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
