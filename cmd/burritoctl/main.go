// burritoctl drives the burrito bot from a terminal against a local store.
package main

import (
	"os"

	"burrito-bot/cmd/burritoctl/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
