package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-api/internal/application"
	"recipe-api/internal/infrastructure/memory"
	"recipe-api/pkg/helpers"
)

func authTestEngine(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := application.NewUserService(
		memory.NewUserRepository(),
		memory.NewTokenRepository(),
		nil, helpers.NewLogger("test", "test"), nil, false, 0,
	)

	ctx := context.Background()
	_, err := users.Register(ctx, "test@test.com", "test1234", "Test")
	require.NoError(t, err)
	token, err := users.IssueToken(ctx, "test@test.com", "test1234")
	require.NoError(t, err)

	r := gin.New()
	r.Use(TokenAuth(users))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserIDKey)})
	})
	return r, token
}

func getWithAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenAuthMissingHeader(t *testing.T) {
	r, _ := authTestEngine(t)

	w := getWithAuth(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestTokenAuthBadScheme(t *testing.T) {
	r, token := authTestEngine(t)

	for _, header := range []string{
		"Basic " + token,
		token, // bare key without a scheme
		"Token",
	} {
		w := getWithAuth(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestTokenAuthUnknownToken(t *testing.T) {
	r, _ := authTestEngine(t)

	w := getWithAuth(r, "Token deadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestTokenAuthValid(t *testing.T) {
	r, token := authTestEngine(t)

	for _, header := range []string{"Token " + token, "Bearer " + token, "token " + token} {
		w := getWithAuth(r, header)
		assert.Equal(t, http.StatusOK, w.Code, header)
		assert.Contains(t, w.Body.String(), "user_id")
	}
}

func TestRateLimitDisabledWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(nil, 10, 0, KeyByIP()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
}
