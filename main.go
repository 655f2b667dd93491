package main

import (
	"errors"
	"os"

	"campus-client/config"
	"campus-client/di"
	services "campus-client/service"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	container := di.NewContainer(cfg, logger)

	// Pick up a token left over from the previous run; an expired one just
	// means the user logs in again.
	if err := container.AuthService.Restore(); err != nil {
		if errors.Is(err, services.ErrSessionExpired) {
			logger.Info().Msg("previous session expired")
		} else {
			logger.Warn().Err(err).Msg("failed to restore session")
		}
	}

	container.CampusHttpServer.Start()
}
