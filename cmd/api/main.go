// Command api runs the FounderMind HTTP server.
//
// Configuration comes from config.yaml (CONFIG_PATH to override) plus
// environment variables; a .env file is loaded automatically when present.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/foundermind/foundermind-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
