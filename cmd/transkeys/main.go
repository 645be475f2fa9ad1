// Package main is the entry point for the transkeys CLI.
package main

import (
	"fmt"
	"os"

	"transkeys/cmd/transkeys/commands"
	"transkeys/internal/errors"
)

// main is the only place the process exits. Fatal validation results
// travel up as *errors.ExitError values from the core.
func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err.Error())

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion: "+exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	os.Exit(errors.ExitUser)
}
