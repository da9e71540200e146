package main

import (
	"context"
	"log"
	"os"

	"github.com/meetavet/meetavet/internal/buildinfo"
	"github.com/meetavet/meetavet/internal/client/cli"
	"github.com/meetavet/meetavet/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
