// cfg is the CLI for cfgstore, a sectioned config file editor.
package main

import (
	"errors"
	"fmt"
	"os"

	"cfgstore/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Failure results have already been reported.
		if !errors.Is(err, cmd.ErrFailureResult) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
