// main is the entry point for the devlens CLI.
package main

import (
	"os"

	"github.com/devlens/devlens/cmd"
	"github.com/devlens/devlens/internal/iocache"
	"github.com/devlens/devlens/internal/logging"
)

func main() {
	err := cmd.Execute()

	// Flush buffered logs and close cache connections before exiting.
	iocache.CloseCaching()
	logging.Sync()

	if err != nil {
		os.Exit(1)
	}
}
