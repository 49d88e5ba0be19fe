package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/shishant-cloud/ClassSchedule/internal/config"
	"github.com/shishant-cloud/ClassSchedule/internal/routes"
	"github.com/shishant-cloud/ClassSchedule/internal/store"
	"github.com/shishant-cloud/ClassSchedule/web"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.SecretIsDefault() {
		logger.Warn().Msg("SESSION_SECRET not set, using insecure dev default")
	}

	s, err := store.New(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("store init failed")
	}

	if err := store.Seed(s, cfg); err != nil {
		logger.Fatal().Err(err).Msg("account seed failed")
	}

	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())
	routes.Register(r, s, cfg)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}
