package handler

import (
	"net/http"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	domainerr "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/persistence"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/usecase"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles the digital account endpoints
type AccountHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

func accountToResponse(account *entity.DigitalAccount) dto.AccountResponse {
	return dto.AccountResponse{
		ID:        account.AccountID,
		UserID:    account.UserID,
		Name:      account.Name,
		Balance:   account.Balance,
		Type:      account.Type,
		CreatedAt: account.CreatedAt,
	}
}

// Create handles POST /digital-account
func (h *AccountHandler) Create(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.AccountCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, domainerr.ErrInvalidRequest)
		return
	}

	account, err := h.ledgerUseCase.CreateAccount(c.Request.Context(), identity, req.Name, req.Balance, req.Type)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, accountToResponse(account))
}

// List handles GET /digital-accounts
func (h *AccountHandler) List(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	accounts, err := h.ledgerUseCase.ListAccounts(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, accountToResponse(&accounts[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// Update handles PUT /digital-account/:accountId. Only the fields present
// in the body are changed.
func (h *AccountHandler) Update(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	accountID := c.Param("accountId")
	if accountID == "" {
		respondError(c, h.logger, domainerr.ErrInvalidRequest)
		return
	}

	var req dto.AccountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, domainerr.ErrInvalidRequest)
		return
	}

	account, err := h.ledgerUseCase.UpdateAccount(c.Request.Context(), identity, accountID, persistence.AccountUpdate{
		Name:    req.Name,
		Balance: req.Balance,
		Type:    req.Type,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, accountToResponse(account))
}

// Delete handles DELETE /digital-account/:accountId
func (h *AccountHandler) Delete(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	accountID := c.Param("accountId")
	if accountID == "" {
		respondError(c, h.logger, domainerr.ErrInvalidRequest)
		return
	}

	if err := h.ledgerUseCase.DeleteAccount(c.Request.Context(), identity, accountID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
