package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/redline/internal/cli"
	"github.com/dmitrijs2005/redline/internal/config"
	"github.com/dmitrijs2005/redline/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
