package handler

import (
	"net/http"
	"strconv"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	domainerr "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/usecase"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SavingsHandler handles the savings endpoints
type SavingsHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewSavingsHandler creates a new savings handler instance
func NewSavingsHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *SavingsHandler {
	return &SavingsHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

func savingsToResponse(entry *entity.SavingsEntry) dto.SavingsResponse {
	return dto.SavingsResponse{
		UserID: entry.UserID,
		Index:  entry.Index,
		Name:   entry.Name,
		Amount: entry.Amount,
		Medium: entry.Medium,
		Date:   entry.Date,
	}
}

// queryIndex parses the required index query parameter
func queryIndex(c *gin.Context) (int64, error) {
	raw := c.Query("index")
	if raw == "" {
		return 0, domainerr.ErrInvalidRequest
	}
	index, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || index <= 0 {
		return 0, domainerr.ErrInvalidRequest
	}
	return index, nil
}

// List handles GET /savings. With an index query parameter it returns the
// single matching entry, otherwise the full list.
func (h *SavingsHandler) List(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if c.Query("index") != "" {
		index, err := queryIndex(c)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		entry, err := h.ledgerUseCase.GetSavingsByIndex(c.Request.Context(), identity, index)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, savingsToResponse(entry))
		return
	}

	entries, err := h.ledgerUseCase.ListSavings(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.SavingsResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, savingsToResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// Create handles POST /savings. The entry index is assigned server side.
func (h *SavingsHandler) Create(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.SavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, domainerr.ErrInvalidRequest)
		return
	}

	entry, err := h.ledgerUseCase.AppendSavings(c.Request.Context(), identity, req.Name, req.Amount, req.Medium)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, savingsToResponse(entry))
}

// Update handles PATCH /savings
func (h *SavingsHandler) Update(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.SavingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, domainerr.ErrInvalidRequest)
		return
	}

	entry, err := h.ledgerUseCase.UpdateSavings(c.Request.Context(), identity, req.Index, req.Name, req.Amount, req.Medium)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, savingsToResponse(entry))
}

// Delete handles DELETE /savings?index=N
func (h *SavingsHandler) Delete(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	index, err := queryIndex(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.ledgerUseCase.DeleteSavings(c.Request.Context(), identity, index); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
