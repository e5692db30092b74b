// Command unitconv converts between compound units of measurement.
package main

import (
	"os"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(bootstrap); err != nil {
		os.Exit(1)
	}
}
