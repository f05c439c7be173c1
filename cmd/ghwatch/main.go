// ghwatch manages GitHub repository watch subscriptions.
package main

import (
	"os"

	"github.com/jmgilman/ghwatch/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
