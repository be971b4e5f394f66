package middleware

import (
	"strings"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	domainerr "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/usecase"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const identityContextKey = "fintrack.identity"

// RequireAuth verifies the bearer token and binds the verified identity to
// the request context. Handlers behind this middleware read the identity
// via IdentityFromContext and nothing else; user ids in the body or path
// are never trusted. Auth failures short-circuit before any ledger call.
func RequireAuth(verifier usecase.TokenVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.Verify(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			logger.Warn("Request rejected by auth", map[string]any{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
				"error":  err.Error(),
			})
			c.AbortWithStatusJSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: domainerr.PublicMessage(err),
			})
			return
		}

		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity RequireAuth stored for this
// request
func IdentityFromContext(c *gin.Context) (entity.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return entity.Identity{}, false
	}
	identity, ok := value.(entity.Identity)
	return identity, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header; empty when the header is missing or not a bearer scheme
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
