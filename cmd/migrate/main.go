package main

import (
	"os"

	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength         = 2
	argLengthOverride = 5
)

func main() {
	logger.InitLogger()

	if len(os.Args) != argLength && len(os.Args) != argLengthOverride {
		log.Fatal().Msg("Usage: migrate up|down|drop|step-up [<dbname> <port> <user>]")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if len(os.Args) == argLengthOverride {
		cfg.OverrideDatabase(os.Args[2], os.Args[3], os.Args[4])
	}

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
