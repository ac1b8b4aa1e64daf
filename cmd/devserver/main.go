package main

import (
	"context"
	"log"

	"github.com/dpolyakov/planmate/internal/server"
	"github.com/dpolyakov/planmate/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	app := server.NewApp(cfg)
	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
