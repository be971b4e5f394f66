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

// BalanceHandler handles the balance endpoints
type BalanceHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewBalanceHandler creates a new balance handler instance
func NewBalanceHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *BalanceHandler {
	return &BalanceHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

func balanceToResponse(balance *entity.Balance) dto.BalanceResponse {
	online := make([]dto.OnlineBalanceDTO, 0, len(balance.OnlineBalances))
	for _, ob := range balance.OnlineBalances {
		online = append(online, dto.OnlineBalanceDTO{
			ID:     ob.ID,
			Name:   ob.Name,
			Amount: ob.Amount,
			Type:   ob.Type,
		})
	}

	return dto.BalanceResponse{
		UserID:         balance.UserID,
		TotalBalance:   balance.TotalBalance,
		OfflineBalance: balance.OfflineBalance,
		OnlineBalances: online,
		UpdatedAt:      balance.UpdatedAt,
	}
}

// Get handles GET /balance. A user with no prior balance gets a zeroed
// record created and returned.
func (h *BalanceHandler) Get(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	balance, err := h.ledgerUseCase.GetBalance(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, balanceToResponse(balance))
}

// Put handles POST /balance, a full replace of the balance record
func (h *BalanceHandler) Put(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, domainerr.ErrInvalidRequest)
		return
	}

	online := make([]entity.OnlineBalance, 0, len(req.OnlineBalances))
	for _, ob := range req.OnlineBalances {
		online = append(online, entity.OnlineBalance{
			ID:     ob.ID,
			Name:   ob.Name,
			Amount: ob.Amount,
			Type:   ob.Type,
		})
	}

	balance, err := h.ledgerUseCase.PutBalance(c.Request.Context(), identity, req.OfflineBalance, online)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, balanceToResponse(balance))
}
