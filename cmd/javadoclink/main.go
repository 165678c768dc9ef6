package main

import (
	"fmt"
	"os"

	"github.com/skelly-dev/javadoclink/internal/cli"
	"github.com/skelly-dev/javadoclink/internal/errors"
)

var version = "0.1.0-dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "javadoclink: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
