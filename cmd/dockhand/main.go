// Command dockhand is a task runner for projects developed inside a
// Docker container.
package main

import (
	"os"

	"github.com/dockhand-sh/dockhand/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
