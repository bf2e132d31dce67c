/* main.go
 * The "main" method for the cups command line tool. Subcommands are defined in the cli package
 * Usage: go run . play --type competitions.poweroftwo_double --rounds 3
 */

package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"knockout-cups/cli"
)

func main() {
	// CUPS_* settings may come from a .env file
	if err := loadEnv(".env"); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
