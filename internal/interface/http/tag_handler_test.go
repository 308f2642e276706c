package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsLoginRequired(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/tags", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRetrieveTags(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	for _, name := range []string{"Vegan", "Dessert"} {
		w := doJSON(t, r, http.MethodPost, "/tags", token, gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/tags", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	decodeBody(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "Vegan", resp[0]["name"], "ordered by name descending")
	assert.Equal(t, "Dessert", resp[1]["name"])
}

func TestTagsLimitedToUser(t *testing.T) {
	r, _ := newTestRouter(t)
	tokenA := registerAndLogin(t, r, "test@test.com")
	tokenB := registerAndLogin(t, r, "other@test.com")

	w := doJSON(t, r, http.MethodPost, "/tags", tokenA, gin.H{"name": "Vegan"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/tags", tokenB, gin.H{"name": "Dessert"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/tags", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	decodeBody(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "Dessert", resp[0]["name"])
	assert.NotContains(t, w.Body.String(), "Vegan")

	w = doJSON(t, r, http.MethodGet, "/tags", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vegan")
}

func TestCreateTagInvalid(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/tags", token, gin.H{"name": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeBody(t, w, &resp)
	assert.Contains(t, resp, "name")
}

func TestIngredientsLoginRequired(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/ingredients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRetrieveIngredients(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	for _, name := range []string{"Kale", "Salt"} {
		w := doJSON(t, r, http.MethodPost, "/ingredients", token, gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/ingredients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	decodeBody(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "Salt", resp[0]["name"])
	assert.Equal(t, "Kale", resp[1]["name"])
}

func TestIngredientsLimitedToUser(t *testing.T) {
	r, _ := newTestRouter(t)
	tokenA := registerAndLogin(t, r, "test@test.com")
	tokenB := registerAndLogin(t, r, "test2@test.com")

	w := doJSON(t, r, http.MethodPost, "/ingredients", tokenA, gin.H{"name": "Kale"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/ingredients", tokenB, gin.H{"name": "Salt"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/ingredients", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	decodeBody(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "Kale", resp[0]["name"])
}

func TestCreateIngredientInvalid(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/ingredients", token, gin.H{"name": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
