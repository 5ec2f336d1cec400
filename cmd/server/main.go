// Package main implements the entry point for the kotoba API server,
// a CRUD REST API for users, posts, and vocabulary entries backed by
// PostgreSQL.
package main

import (
	"context"
	"flag"
	"log"
)

func main() {
	seed := flag.Bool("seed", false, "insert starter vocabulary entries if the table is empty")
	flag.Parse()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	ctx := context.Background()

	if *seed {
		if err := app.seedVocabulary(ctx); err != nil {
			app.logger.Error("Vocabulary seeding failed", "error", err)
			return
		}
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		app.logger.Error("Server exited with error", "error", err)
	}
}
