package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"recipe-api/internal/application"
	"recipe-api/internal/container"
	handlers "recipe-api/internal/interface/http"
	"recipe-api/internal/interface/middleware"
)

// UserModule wires the user HTTP handlers and token middleware into routes
// Public: POST /users/create, POST /users/token
// Protected: GET /users/detail, PATCH /users/detail

type UserModule struct {
	Handler *handlers.UserHandler
	Users   *application.UserService
}

func NewUserModule(h *handlers.UserHandler, users *application.UserService) *UserModule {
	return &UserModule{Handler: h, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Public with rate limiting
	createLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	tokenLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/users/create", createLimiter, m.Handler.Create)
	rg.POST("/users/token", tokenLimiter, m.Handler.Token)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.TokenAuth(m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/users/detail", m.Handler.Detail)
		auth.PATCH("/users/detail", m.Handler.Update)
	}
}
