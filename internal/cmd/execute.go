package cmd

import (
	"io"
	"os"
)

// Execute runs the command line with args and exits the process with the
// resulting status.
func Execute(args []string, stdout, stderr io.Writer) {
	os.Exit(run(args, stdout, stderr))
}
