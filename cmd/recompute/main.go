package main

import (
	"cryptofolio/internal/config"
	db "cryptofolio/internal/db/query"
	"cryptofolio/internal/repository"
	"cryptofolio/internal/service"
	"cryptofolio/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// rebuild every persisted position from the full transaction history

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.SetGlobalLogger(logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.PrettyLogs,
	}))

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db")
	}

	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to begin tx")
	}
	defer tx.Rollback()

	positionsService := service.NewPositionsService(
		repository.NewTransactionsRepository(),
		repository.NewPositionsRepository(),
	)

	summaries, err := positionsService.RecomputeAll(tx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to recompute positions")
	}
	if err := tx.Commit(); err != nil {
		log.Fatal().Err(err).Msg("failed to commit")
	}

	log.Info().Int("positions", len(summaries)).Msg("recompute complete")
}
