// Command relpredict predicts component hazard rates with MIL-HDBK-217F.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/relpredict/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
