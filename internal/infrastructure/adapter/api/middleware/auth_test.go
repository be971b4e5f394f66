package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/usecase/auth"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time                  { return s.now }
func (s stubClock) Since(t time.Time) time.Duration { return s.now.Sub(t) }
func (s stubClock) WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

type nopLogger struct{}

func (nopLogger) SetLevel(coreport.LogLevel)   {}
func (nopLogger) GetLevel() coreport.LogLevel  { return coreport.LogLevelInfo }
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }

func newAuthRouter(verifier *auth.TokenService) (*gin.Engine, *entity.Identity) {
	gin.SetMode(gin.TestMode)

	var seen entity.Identity
	router := gin.New()
	router.GET("/protected", RequireAuth(verifier, nopLogger{}), func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		seen = identity
		c.Status(http.StatusOK)
	})
	return router, &seen
}

func performRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenService([]byte("test-signing-secret"), 24*time.Hour, stubClock{now: time.Now()})

	t.Run("Valid token reaches the handler with its identity", func(t *testing.T) {
		router, seen := newAuthRouter(tokens)

		token, err := tokens.Issue(1001)
		require.NoError(t, err)

		w := performRequest(router, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint64(1001), seen.UserID)
	})

	t.Run("Bearer scheme is case insensitive", func(t *testing.T) {
		router, _ := newAuthRouter(tokens)

		token, err := tokens.Issue(1001)
		require.NoError(t, err)

		w := performRequest(router, "bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		router, _ := newAuthRouter(tokens)

		w := performRequest(router, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 4011, decodeError(t, w).Code)
	})

	t.Run("Non bearer scheme", func(t *testing.T) {
		router, _ := newAuthRouter(tokens)

		w := performRequest(router, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 4011, decodeError(t, w).Code)
	})

	t.Run("Malformed token", func(t *testing.T) {
		router, _ := newAuthRouter(tokens)

		w := performRequest(router, "Bearer not.a.token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 4012, decodeError(t, w).Code)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		router, _ := newAuthRouter(tokens)

		other := auth.NewTokenService([]byte("some-other-secret"), 24*time.Hour, stubClock{now: time.Now()})
		token, err := other.Issue(1001)
		require.NoError(t, err)

		w := performRequest(router, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 4012, decodeError(t, w).Code)
	})

	t.Run("Expired token", func(t *testing.T) {
		router, _ := newAuthRouter(tokens)

		stale := auth.NewTokenService([]byte("test-signing-secret"), 24*time.Hour, stubClock{now: time.Now().Add(-48 * time.Hour)})
		token, err := stale.Issue(1001)
		require.NoError(t, err)

		w := performRequest(router, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 4013, decodeError(t, w).Code)
	})
}

func TestBearerToken(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expected string
	}{
		{"Empty header", "", ""},
		{"Standard bearer", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"Lowercase scheme", "bearer abc", "abc"},
		{"No scheme", "abc.def.ghi", ""},
		{"Wrong scheme", "Basic abc", ""},
		{"Extra whitespace", "Bearer   abc", "abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bearerToken(tc.header))
		})
	}
}
