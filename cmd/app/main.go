package main

import (
	"nomad/config"
	"nomad/di"
	"nomad/helper"
	"nomad/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Nomad API
// @version 1.0
// @description Corporate travel requests, accommodations and bookings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
