package config

import (
	"fmt"
	"os"

	"transkeys/internal/errors"
)

// ValidatePaths checks that the declared directories exist and are
// directories. Input directories are always required; the translations
// path only under the find command, since extract may create it.
//
// The first violation wins and remaining paths are not checked. The
// returned error is a fatal *errors.ExitError carrying the user-facing
// "<Field> <detail>" message; the CLI boundary performs the process exit.
func ValidatePaths(cfg *Resolved, cmd Command) error {
	for _, p := range cfg.Input {
		if problem := dirProblem(p); problem != "" {
			return fatal("Input " + problem)
		}
	}

	if cmd == CommandFind && cfg.TranslationsPath != "" {
		if problem := dirProblem(cfg.TranslationsPath); problem != "" {
			return fatal("Translations " + problem)
		}
	}

	return nil
}

// dirProblem describes why path is not a usable directory, or returns ""
// when it is one. Stat errors of any kind count as absence; the tool is
// one-shot and does not retry.
func dirProblem(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Sprintf("path %q does not exist", path)
	}
	if !info.IsDir() {
		return fmt.Sprintf("path %q is not a directory", path)
	}
	return ""
}

func fatal(msg string) error {
	return errors.NewUserError(
		errors.Wrap(errors.ErrInvalidConfig, msg),
		"Check the configured paths in transkeys.yaml")
}
