// Package errors holds the terminal error helpers shared by the command
// entrypoints. Storage reads and writes never reach these; the store layer
// fails soft and logs instead.
package errors

import (
	"fmt"
	"os"

	"github.com/chrisjoiner1989/bible-steps/internal/logger"
)

// Format renders err with the "Error: " prefix used on stderr. A nil error
// renders as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs err, prints it to stderr, and exits with code 1. A nil error is
// a no-op.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
