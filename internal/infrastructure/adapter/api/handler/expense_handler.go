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

// ExpenseHandler handles the expense endpoints
type ExpenseHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewExpenseHandler creates a new expense handler instance
func NewExpenseHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

func expenseToResponse(expense *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:             expense.ID,
		UserID:         expense.UserID,
		Amount:         expense.Amount,
		Remark:         expense.Remark,
		SpentFromState: expense.SpentFromState,
		AccountID:      expense.AccountID,
		Timestamp:      expense.Timestamp,
		Date:           expense.Date,
	}
}

// Create handles POST /expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, domainerr.ErrInvalidRequest)
		return
	}

	expense, err := h.ledgerUseCase.AppendExpense(c.Request.Context(), identity, usecase.ExpenseInput{
		Amount:         req.Amount,
		Remark:         req.Remark,
		SpentFromState: req.SpentFromState,
		AccountID:      req.AccountID,
		Timestamp:      req.Timestamp,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, expenseToResponse(expense))
}

// List handles GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	identity, err := requestIdentity(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	expenses, err := h.ledgerUseCase.ListExpenses(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, expenseToResponse(&expenses[i]))
	}

	c.JSON(http.StatusOK, responses)
}
