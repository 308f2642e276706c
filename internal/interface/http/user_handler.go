package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"recipe-api/internal/application"
	"recipe-api/internal/interface/middleware"
	"recipe-api/pkg/response"
	"recipe-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`
}

type tokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password" binding:"omitempty,pwd"`
}

// Create handles POST /users/create.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToFieldErrors(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmailTaken):
			response.FieldError(c, "email", "a user with this email already exists")
		case errors.Is(err, application.ErrPasswordTooShort):
			response.FieldError(c, "password", "must be at least 5 characters long")
		case errors.Is(err, application.ErrEmailRequired):
			response.FieldError(c, "email", "is required")
		default:
			h.Logger.WithError(err).Error("user create failed")
			response.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"email": u.Email, "name": u.Name})
}

// Token handles POST /users/token. Bad credentials yield the same generic
// message whether the account exists or not.
func (h *UserHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToFieldErrors(err))
		return
	}

	token, err := h.Svc.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FieldError(c, "non_field_errors", "unable to authenticate with provided credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Detail handles GET /users/detail.
func (h *UserHandler) Detail(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(uid)
	if err != nil {
		response.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": u.Email, "name": u.Name})
}

// Update handles PATCH /users/detail. Absent fields are left untouched;
// the password is re-hashed when present.
func (h *UserHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToFieldErrors(err))
		return
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrPasswordTooShort) {
			response.FieldError(c, "password", "must be at least 5 characters long")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("profile update failed")
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": u.Email, "name": u.Name})
}
