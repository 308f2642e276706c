package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"recipe-api/internal/application"
	"recipe-api/internal/domain/entity"
	"recipe-api/internal/interface/middleware"
	"recipe-api/pkg/response"
	"recipe-api/pkg/validation"
)

type RecipeHandler struct {
	Svc    *application.RecipeService
	Logger *logrus.Logger
}

func NewRecipeHandler(svc *application.RecipeService, logger *logrus.Logger) *RecipeHandler {
	return &RecipeHandler{Svc: svc, Logger: logger}
}

type recipeResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

func toRecipeResponse(r entity.Recipe) recipeResponse {
	return recipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
	}
}

type createRecipeRequest struct {
	Title       string  `json:"title" binding:"required"`
	TimeMinutes int     `json:"time_minutes" binding:"required,gte=0"`
	Price       float64 `json:"price" binding:"required,gte=0"`
}

type updateRecipeRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	TimeMinutes *int     `json:"time_minutes" binding:"omitempty,gte=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

// recipeID parses the :id path parameter. A non-numeric id is treated the
// same as a missing record.
func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(c)
		return 0, false
	}
	return id, true
}

// List handles GET /recipes, scoped to the caller.
func (h *RecipeHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	recipes, err := h.Svc.ListRecipes(uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("recipe list failed")
		response.InternalError(c)
		return
	}
	out := make([]recipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /recipes.
func (h *RecipeHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToFieldErrors(err))
		return
	}

	rec, err := h.Svc.CreateRecipe(c.Request.Context(), uid, application.RecipeInput{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
	})
	if err != nil {
		if errors.Is(err, application.ErrTitleRequired) {
			response.FieldError(c, "title", "is required")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("recipe create failed")
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, toRecipeResponse(*rec))
}

// Detail handles GET /recipes/:id. A recipe owned by another user is a 404.
func (h *RecipeHandler) Detail(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, ok := recipeID(c)
	if !ok {
		return
	}

	rec, err := h.Svc.GetRecipe(id, uid)
	if err != nil {
		h.notFoundOrError(c, uid, err)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(*rec))
}

// Update handles PUT and PATCH /recipes/:id. PUT requests carry every
// field, PATCH only the changed ones; both funnel into the same partial
// update.
func (h *RecipeHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToFieldErrors(err))
		return
	}
	if c.Request.Method == http.MethodPut {
		if fields := missingPutFields(req); len(fields) > 0 {
			response.ValidationError(c, fields)
			return
		}
	}

	rec, err := h.Svc.UpdateRecipe(c.Request.Context(), id, uid, application.UpdateRecipeInput{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
	})
	if err != nil {
		if errors.Is(err, application.ErrTitleRequired) {
			response.FieldError(c, "title", "is required")
			return
		}
		h.notFoundOrError(c, uid, err)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(*rec))
}

// Delete handles DELETE /recipes/:id.
func (h *RecipeHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.Svc.DeleteRecipe(c.Request.Context(), id, uid); err != nil {
		h.notFoundOrError(c, uid, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /recipes/:id/image with a multipart "image" part.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, ok := recipeID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		response.FieldError(c, "image", "is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.FieldError(c, "image", "could not be read")
		return
	}
	defer func() { _ = f.Close() }()

	rec, err := h.Svc.UploadImage(c.Request.Context(), id, uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.notFoundOrError(c, uid, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": rec.ID, "image_url": rec.ImageURL})
}

// Search handles GET /recipes/search?q=.
func (h *RecipeHandler) Search(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	results, err := h.Svc.SearchRecipes(c.Request.Context(), uid, q, size)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("recipe search failed")
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *RecipeHandler) notFoundOrError(c *gin.Context, uid string, err error) {
	if errors.Is(err, application.ErrNotFound) {
		response.NotFound(c)
		return
	}
	h.Logger.WithError(err).WithField("user_id", uid).Error("recipe operation failed")
	response.InternalError(c)
}

func missingPutFields(req updateRecipeRequest) response.FieldErrors {
	fields := response.FieldErrors{}
	if req.Title == nil {
		fields["title"] = []string{"is required"}
	}
	if req.TimeMinutes == nil {
		fields["time_minutes"] = []string{"is required"}
	}
	if req.Price == nil {
		fields["price"] = []string{"is required"}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
