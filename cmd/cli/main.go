package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/farmchainx/internal/buildinfo"
	"github.com/dmitrijs2005/farmchainx/internal/client/cli"
	"github.com/dmitrijs2005/farmchainx/internal/client/config"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
