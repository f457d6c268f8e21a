package main

import (
	"os"

	"cryptofolio/internal/config"
	db "cryptofolio/internal/db/query"
	"cryptofolio/internal/ingestion"
	"cryptofolio/internal/repository"
	"cryptofolio/internal/service"
	"cryptofolio/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// load an exchange-export csv into the transaction table and rebuild
// the affected positions

func main() {
	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: ingest <transactions.csv>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.SetGlobalLogger(logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.PrettyLogs,
	}))

	txns, err := ingestion.ParseTransactionFile(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse csv")
	}

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db")
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to begin tx")
	}
	defer tx.Rollback()

	transactionsRepository := repository.NewTransactionsRepository()
	inserted, err := transactionsRepository.Add(tx, txns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to insert transactions")
	}

	symbols := map[string]struct{}{}
	for _, t := range inserted {
		symbols[t.Symbol] = struct{}{}
	}

	positionsService := service.NewPositionsService(
		transactionsRepository,
		repository.NewPositionsRepository(),
	)
	for symbol := range symbols {
		if _, err := positionsService.Recompute(tx, symbol); err != nil {
			log.Fatal().Err(err).Str("symbol", symbol).Msg("failed to recompute position")
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatal().Err(err).Msg("failed to commit")
	}

	log.Info().Int("transactions", len(inserted)).Int("symbols", len(symbols)).Msg("ingest complete")
}
