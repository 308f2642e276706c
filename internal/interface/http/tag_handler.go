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

type TagHandler struct {
	Svc    *application.RecipeService
	Logger *logrus.Logger
}

func NewTagHandler(svc *application.RecipeService, logger *logrus.Logger) *TagHandler {
	return &TagHandler{Svc: svc, Logger: logger}
}

type tagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toTagResponse(t entity.Tag) tagResponse {
	return tagResponse{ID: t.ID, Name: t.Name}
}

type createTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// List handles GET /tags, scoped to the caller.
func (h *TagHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	tags, err := h.Svc.ListTags(uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("tag list failed")
		response.InternalError(c)
		return
	}
	out := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTagResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /tags.
func (h *TagHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToFieldErrors(err))
		return
	}

	t, err := h.Svc.CreateTag(uid, req.Name)
	if err != nil {
		if err == application.ErrNameRequired {
			response.FieldError(c, "name", "is required")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("tag create failed")
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, toTagResponse(*t))
}
