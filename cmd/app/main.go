package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	go app.Sweeper.Start(context.Background())

	app.HTTP.Serve()
}
