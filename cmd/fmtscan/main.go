// Command fmtscan compiles format templates and scans text with them.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := execute(context.Background(), cmd); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(exitCode(err))
	}
}
