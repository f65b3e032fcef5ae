// Command strata runs the strata demo view and inspects project
// configuration.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/strata/cmd/strata/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
