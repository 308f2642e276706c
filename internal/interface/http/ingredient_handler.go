package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"recipe-api/internal/application"
	"recipe-api/internal/domain/entity"
	"recipe-api/internal/interface/middleware"
	"recipe-api/pkg/response"
	"recipe-api/pkg/validation"
)

type IngredientHandler struct {
	Svc    *application.RecipeService
	Logger *logrus.Logger
}

func NewIngredientHandler(svc *application.RecipeService, logger *logrus.Logger) *IngredientHandler {
	return &IngredientHandler{Svc: svc, Logger: logger}
}

type ingredientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type createIngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

// List handles GET /ingredients, scoped to the caller.
func (h *IngredientHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	ingredients, err := h.Svc.ListIngredients(uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("ingredient list failed")
		response.InternalError(c)
		return
	}
	out := make([]ingredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		out = append(out, toIngredientResponse(i))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /ingredients.
func (h *IngredientHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToFieldErrors(err))
		return
	}

	i, err := h.Svc.CreateIngredient(uid, req.Name)
	if err != nil {
		if err == application.ErrNameRequired {
			response.FieldError(c, "name", "is required")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("ingredient create failed")
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, toIngredientResponse(*i))
}

func toIngredientResponse(i entity.Ingredient) ingredientResponse {
	return ingredientResponse{ID: i.ID, Name: i.Name}
}
