package main

import (
	"cryptofolio/api"
	"cryptofolio/internal/config"
	db "cryptofolio/internal/db/query"
	"cryptofolio/internal/repository"
	"cryptofolio/internal/service"
	"cryptofolio/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

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

	transactionsRepository := repository.NewTransactionsRepository()
	positionsRepository := repository.NewPositionsRepository()

	positionsService := service.NewPositionsService(transactionsRepository, positionsRepository)
	pnlService := service.NewPnLService(transactionsRepository)

	err = api.StartApi(cfg.Port, api.Handler{
		Db:                     dbConn,
		TransactionsRepository: transactionsRepository,
		PositionsService:       positionsService,
		PnlService:             pnlService,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("api stopped")
	}
}
