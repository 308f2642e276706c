package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecipe() gin.H {
	return gin.H{"title": "sample recipe", "time_minutes": 10, "price": 5.0}
}

func TestRecipesLoginRequired(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/recipes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCreateRecipe(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", token, sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	decodeBody(t, w, &resp)
	assert.Equal(t, "sample recipe", resp["title"])
	assert.Equal(t, float64(10), resp["time_minutes"])
	assert.Equal(t, 5.0, resp["price"])
	assert.NotZero(t, resp["id"])
}

func TestCreateRecipeInvalid(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", token, gin.H{"time_minutes": 10, "price": 5.0})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeBody(t, w, &resp)
	assert.Contains(t, resp, "title")
}

func TestRetrieveRecipes(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", token, sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/recipes", token, gin.H{"title": "second recipe", "time_minutes": 20, "price": 8.5})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	decodeBody(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "second recipe", resp[0]["title"], "newest first")
	assert.Equal(t, "sample recipe", resp[1]["title"])
}

func TestRecipesLimitedToUser(t *testing.T) {
	r, _ := newTestRouter(t)
	tokenA := registerAndLogin(t, r, "test@test.com")
	tokenB := registerAndLogin(t, r, "other@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", tokenA, sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/recipes", tokenB, gin.H{"title": "their recipe", "time_minutes": 15, "price": 3.0})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/recipes", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	decodeBody(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "sample recipe", resp[0]["title"])
}

func TestRecipeDetail(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", token, sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	decodeBody(t, w, &created)
	id := created["id"]

	w = doJSON(t, r, http.MethodGet, "/recipes/"+itoa(t, id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeBody(t, w, &resp)
	assert.Equal(t, "sample recipe", resp["title"])
}

func TestRecipeDetailNotOwned(t *testing.T) {
	r, _ := newTestRouter(t)
	tokenA := registerAndLogin(t, r, "test@test.com")
	tokenB := registerAndLogin(t, r, "other@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", tokenA, sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	decodeBody(t, w, &created)
	path := "/recipes/" + itoa(t, created["id"])

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		w = doJSON(t, r, method, path, tokenB, gin.H{"title": "hijacked"})
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}

	var resp map[string]any
	w = doJSON(t, r, http.MethodGet, path, tokenB, nil)
	decodeBody(t, w, &resp)
	assert.Equal(t, "not found", resp["detail"])

	// the owner still sees the recipe untouched
	w = doJSON(t, r, http.MethodGet, path, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.Equal(t, "sample recipe", resp["title"])
}

func TestRecipeDetailBadID(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodGet, "/recipes/not-a-number", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPartialUpdateRecipe(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", token, sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	decodeBody(t, w, &created)
	path := "/recipes/" + itoa(t, created["id"])

	w = doJSON(t, r, http.MethodPatch, path, token, gin.H{"title": "updated title"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeBody(t, w, &resp)
	assert.Equal(t, "updated title", resp["title"])
	assert.Equal(t, float64(10), resp["time_minutes"], "untouched fields survive a patch")
	assert.Equal(t, 5.0, resp["price"])
}

func TestFullUpdateRecipe(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", token, sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	decodeBody(t, w, &created)
	path := "/recipes/" + itoa(t, created["id"])

	w = doJSON(t, r, http.MethodPut, path, token, gin.H{"title": "replaced", "time_minutes": 25, "price": 2.5})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeBody(t, w, &resp)
	assert.Equal(t, "replaced", resp["title"])
	assert.Equal(t, float64(25), resp["time_minutes"])
	assert.Equal(t, 2.5, resp["price"])
}

func TestFullUpdateRecipeMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", token, sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	decodeBody(t, w, &created)
	path := "/recipes/" + itoa(t, created["id"])

	w = doJSON(t, r, http.MethodPut, path, token, gin.H{"title": "only a title"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeBody(t, w, &resp)
	assert.Contains(t, resp, "time_minutes")
	assert.Contains(t, resp, "price")

	// the recipe is unchanged after a rejected put
	w = doJSON(t, r, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	decodeBody(t, w, &got)
	assert.Equal(t, "sample recipe", got["title"])
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	w := doJSON(t, r, http.MethodPost, "/recipes", token, sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	decodeBody(t, w, &created)
	path := "/recipes/" + itoa(t, created["id"])

	w = doJSON(t, r, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, r, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchRecipesEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "test@test.com")

	// without a search backend configured the endpoint degrades to an empty result list
	w := doJSON(t, r, http.MethodGet, "/recipes/search?q=curry", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []map[string]any `json:"results"`
	}
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Results)
}

// itoa renders the numeric id a JSON decode produced as a path segment.
func itoa(t *testing.T, v any) string {
	t.Helper()
	f, ok := v.(float64)
	require.True(t, ok, "id must be a number, got %T", v)
	return strconv.FormatInt(int64(f), 10)
}
