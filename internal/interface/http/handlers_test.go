package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"recipe-api/internal/application"
	"recipe-api/internal/infrastructure/memory"
	"recipe-api/internal/interface/middleware"
	"recipe-api/pkg/helpers"
	"recipe-api/pkg/validation"
)

// newTestRouter builds a gin engine with the full route table backed by
// in-memory repositories, mirroring the wiring in internal/router.
func newTestRouter(t *testing.T) (*gin.Engine, *application.UserService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := helpers.NewLogger("test", "test")
	users := application.NewUserService(
		memory.NewUserRepository(),
		memory.NewTokenRepository(),
		nil, logger, nil, false, 0,
	)
	recipes := application.NewRecipeService(
		memory.NewTagRepository(),
		memory.NewIngredientRepository(),
		memory.NewRecipeRepository(),
		nil, "", nil, "",
		logger,
	)

	uh := NewUserHandler(users, logger)
	th := NewTagHandler(recipes, logger)
	ih := NewIngredientHandler(recipes, logger)
	rh := NewRecipeHandler(recipes, logger)

	r := gin.New()
	r.POST("/users/create", uh.Create)
	r.POST("/users/token", uh.Token)

	auth := r.Group("/")
	auth.Use(middleware.TokenAuth(users))
	{
		auth.GET("/users/detail", uh.Detail)
		auth.PATCH("/users/detail", uh.Update)

		auth.GET("/tags", th.List)
		auth.POST("/tags", th.Create)

		auth.GET("/ingredients", ih.List)
		auth.POST("/ingredients", ih.Create)

		auth.GET("/recipes", rh.List)
		auth.POST("/recipes", rh.Create)
		auth.GET("/recipes/search", rh.Search)
		auth.GET("/recipes/:id", rh.Detail)
		auth.PUT("/recipes/:id", rh.Update)
		auth.PATCH("/recipes/:id", rh.Update)
		auth.DELETE("/recipes/:id", rh.Delete)
		auth.POST("/recipes/:id/image", rh.UploadImage)
	}

	return r, users
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// registerAndLogin creates a user and returns their bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/users/create", "", gin.H{
		"email": email, "password": "test1234", "name": "Test Name",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/users/token", "", gin.H{
		"email": email, "password": "test1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
