package handler

import (
	"net/http"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	domainerr "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/usecase"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles the transaction endpoints
type TransactionHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

func transactionToResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:             tx.ID,
		UserID:         tx.UserID,
		Amount:         tx.Amount,
		Remark:         tx.Remark,
		Medium:         tx.Medium,
		AccountID:      tx.AccountID,
		SpentFromState: tx.SpentFromState,
		Timestamp:      tx.Timestamp,
		Date:           tx.Date,
	}
}

// Create handles POST /transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, domainerr.ErrInvalidRequest)
		return
	}

	tx, err := h.ledgerUseCase.AppendTransaction(c.Request.Context(), identity, usecase.TransactionInput{
		Amount:         req.Amount,
		Remark:         req.Remark,
		Medium:         req.Medium,
		AccountID:      req.AccountID,
		SpentFromState: req.SpentFromState,
		Timestamp:      req.Timestamp,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, transactionToResponse(tx))
}

// List handles GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	transactions, err := h.ledgerUseCase.ListTransactions(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, transactionToResponse(&transactions[i]))
	}

	c.JSON(http.StatusOK, responses)
}
