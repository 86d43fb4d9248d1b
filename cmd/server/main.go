package main

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/stopsearch-backend-go/internal/api"
	"github.com/jengzang/stopsearch-backend-go/internal/config"
	"github.com/jengzang/stopsearch-backend-go/internal/database"
	"github.com/jengzang/stopsearch-backend-go/internal/logging"
	"github.com/jengzang/stopsearch-backend-go/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load config")
	}

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	gin.SetMode(cfg.GinMode)

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		logging.Fatal().Err(err).Str("path", cfg.DBPath).Msg("Failed to initialize database")
	}
	defer database.Close()

	router := api.SetupRouter(cfg, repository.NewStopSearchRepository(database.GetDB()))

	logging.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := router.Run(cfg.Port); err != nil {
		logging.Fatal().Err(err).Msg("Failed to start server")
	}
}
