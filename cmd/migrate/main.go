package main

import (
	"fmt"
	"nomad/config"
	"nomad/helper"
	"nomad/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()
	logger.InitLogger()
	logger.SetLogLevel(cfg)

	if len(os.Args) < 2 { //nolint:mnd
		log.Fatal().Msg(usage())
	}

	if err := helper.Run(cfg, helper.Action(os.Args[1])); err != nil {
		log.Fatal().Err(err).Msg(usage())
	}
}

func usage() string {
	return fmt.Sprintf("usage: migrate <%v>", helper.Actions())
}
