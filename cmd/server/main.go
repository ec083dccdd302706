// Command server runs the verbforms HTTP backend: an embedded SQLite
// store of English irregular verbs behind a small REST API.
//
// Configuration comes from a YAML file (CONFIG_PATH or ./config.yaml)
// with environment variable overrides.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/verbforms-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
