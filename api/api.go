package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	types "cryptofolio/api-types"
	"cryptofolio/internal/domain"
	"cryptofolio/internal/repository"
	"cryptofolio/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	Db                     *sql.DB
	TransactionsRepository repository.TransactionsRepository
	PositionsService       service.PositionsService
	PnlService             service.PnLService
}

func StartApi(port int, h Handler) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, map[string]string{"message": "welcome to cryptofolio"})
	})

	router.GET("/positions", h.listPositions)
	router.GET("/positions/:symbol", h.getPosition)
	router.POST("/positions/:symbol/recompute", h.recomputePosition)
	router.POST("/recompute", h.recomputeAll)
	router.GET("/realizedPnl", h.realizedPnl)
	router.POST("/transactions", h.createTransactions)

	return router.Run(fmt.Sprintf(":%d", port))
}

func (h Handler) listPositions(c *gin.Context) {
	tx, err := h.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	positions, err := h.PositionsService.List(tx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]types.PositionResponse, 0, len(positions))
	for _, p := range positions {
		out = append(out, types.PositionResponseFromDomain(p))
	}
	c.JSON(200, out)
}

func (h Handler) getPosition(c *gin.Context) {
	tx, err := h.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	position, err := h.PositionsService.Get(tx, c.Param("symbol"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if position == nil {
		returnErrorJsonCode(fmt.Errorf("no position for %s", c.Param("symbol")), c, http.StatusNotFound)
		return
	}
	c.JSON(200, types.PositionResponseFromDomain(*position))
}

func (h Handler) recomputePosition(c *gin.Context) {
	symbol := c.Param("symbol")
	tx, err := h.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	summary, err := h.PositionsService.Recompute(tx, symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, types.PositionResponseFromDomain(*summary))
}

func (h Handler) recomputeAll(c *gin.Context) {
	tx, err := h.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	summaries, err := h.PositionsService.RecomputeAll(tx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]types.PositionResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, types.PositionResponseFromDomain(s))
	}
	c.JSON(200, out)
}

func (h Handler) realizedPnl(c *gin.Context) {
	tx, err := h.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	breakdown, err := h.PnlService.RealizedBreakdown(tx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, types.RealizedPnlResponse{
		GrossPnl:  breakdown.GrossPnL,
		TotalFees: breakdown.TotalFees,
		NetPnl:    breakdown.NetPnL,
		BySymbol:  breakdown.BySymbol,
	})
}

func (h Handler) createTransactions(c *gin.Context) {
	var req types.CreateTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	txns := make([]domain.Transaction, 0, len(req.Transactions))
	symbols := map[string]struct{}{}
	for i, in := range req.Transactions {
		date, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("transaction %d has invalid date: %w", i, err), c, http.StatusBadRequest)
			return
		}
		txns = append(txns, domain.Transaction{
			Symbol:    in.Symbol,
			Type:      domain.TransactionType(in.Type),
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Fee:       in.Fee,
			Date:      date,
		})
		symbols[in.Symbol] = struct{}{}
	}

	tx, err := h.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	inserted, err := h.TransactionsRepository.Add(tx, txns)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	// new rows invalidate the stored summaries, so rebuild the
	// affected symbols in the same tx
	for symbol := range symbols {
		if _, err := h.PositionsService.Recompute(tx, symbol); err != nil {
			returnErrorJson(err, c)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{"inserted": len(inserted)})
}

func returnErrorJson(err error, c *gin.Context) {
	log.Error().Err(err).Msg("request failed")
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log.Error().Err(err).Msg("request failed")
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
