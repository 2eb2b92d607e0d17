package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/cli"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/config"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
