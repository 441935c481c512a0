package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/padre/internal/client/cli"
	"github.com/dmitrijs2005/padre/internal/client/config"
	"github.com/dmitrijs2005/padre/internal/logging"

	_ "modernc.org/sqlite"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
