package main

import (
	"os"

	"beauteefool/config"
	"beauteefool/helper"
	"beauteefool/shared/logger"

	"github.com/rs/zerolog/log"
)

const usage = "usage: migrate up|down|step-up|drop"

func main() {
	if len(os.Args) != 2 {
		log.Fatal().Msg(usage)
	}

	action := os.Args[1]
	cfg := config.Get()

	logger.InitLogger(cfg)

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
	}
}
