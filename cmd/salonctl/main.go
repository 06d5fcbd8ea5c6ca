package main

import (
	"os"

	"beauteefool/config"
	"beauteefool/shared/logger"
	"beauteefool/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	if err := newRootCmd(cfg, timezone.Now).Execute(); err != nil {
		log.Error().Err(err).Msg("salonctl failed")
		os.Exit(1)
	}
}
