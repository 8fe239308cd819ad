// Command around-server runs the development backend: the auth API under
// /auth and the content API under /api.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/around/internal/server"
	"github.com/dmitrijs2005/around/internal/server/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
