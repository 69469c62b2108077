package main

import (
	"fmt"
	"os"

	"github.com/temirov/promptpath/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main prints the prompt path and exits non-zero when it cannot be formatted.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
