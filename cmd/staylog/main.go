// Command staylog is the operator CLI: migrations, tokens and offline access
// to a user's timeline.
package main

import (
	"log"

	"github.com/pkordes/staylog/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
