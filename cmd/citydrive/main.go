package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"citydrive/internal/config"
	"citydrive/internal/game"
)

func main() {
	cfgErr := config.Load(".")

	level, err := zerolog.ParseLevel(config.GetString("logLevel"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("config file ignored, running on defaults")
	}

	if err := game.Run(logger); err != nil {
		logger.Fatal().Err(err).Msg("citydrive failed")
	}
}
