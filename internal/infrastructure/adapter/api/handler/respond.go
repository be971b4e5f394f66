package handler

import (
	"net/http"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	domainerr "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/dto"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to its HTTP status and writes the
// standard error body. Server faults are logged here and leave the response
// generic.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := domainerr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: domainerr.PublicMessage(err),
	})
}

// requestIdentity returns the identity the auth middleware verified for
// this request
func requestIdentity(c *gin.Context) (entity.Identity, error) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return entity.Identity{}, domainerr.ErrMissingCredential
	}
	return identity, nil
}
