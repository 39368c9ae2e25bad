package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/champsapp/champs-cli/internal/buildinfo"
	"github.com/champsapp/champs-cli/internal/client/cli"
	"github.com/champsapp/champs-cli/internal/client/config"
	"github.com/champsapp/champs-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
