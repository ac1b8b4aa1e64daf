package main

import (
	"context"
	"log"

	"github.com/dpolyakov/planmate/internal/client/cli"
	"github.com/dpolyakov/planmate/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("init error: %v", err)
		return
	}

	app.Run(ctx)
}
