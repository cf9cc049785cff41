package main

import (
	"context"
	"log"
	"os"

	"github.com/gamezone/gamezone/internal/client/cli"
	"github.com/gamezone/gamezone/internal/client/config"
	"github.com/gamezone/gamezone/internal/flagx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx, flagx.Positional(os.Args[1:], config.FlagNames)); err != nil {
		log.Fatalf("%v", err)
	}

}
