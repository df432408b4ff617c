// Command phinet validates, inspects and converts integrated-information
// network models.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/phinet/internal/cli"
)

// set during build
var version = "dev"

func main() {
	cmd := cli.NewRootCommand()
	cmd.Version = version
	if err := cmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			// usage errors that never reached a formatter
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
