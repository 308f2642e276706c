package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"recipe-api/internal/application"
	"recipe-api/internal/container"
	handlers "recipe-api/internal/interface/http"
	"recipe-api/internal/interface/middleware"
)

// RecipeModule wires the owner-scoped tag, ingredient and recipe routes.
// Everything here requires a valid bearer token.

type RecipeModule struct {
	Tags        *handlers.TagHandler
	Ingredients *handlers.IngredientHandler
	Recipes     *handlers.RecipeHandler
	Users       *application.UserService
}

func NewRecipeModule(tags *handlers.TagHandler, ingredients *handlers.IngredientHandler, recipes *handlers.RecipeHandler, users *application.UserService) *RecipeModule {
	return &RecipeModule{Tags: tags, Ingredients: ingredients, Recipes: recipes, Users: users}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.TokenAuth(m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/tags", m.Tags.List)
		auth.POST("/tags", m.Tags.Create)

		auth.GET("/ingredients", m.Ingredients.List)
		auth.POST("/ingredients", m.Ingredients.Create)

		auth.GET("/recipes", m.Recipes.List)
		auth.POST("/recipes", m.Recipes.Create)
		auth.GET("/recipes/search", m.Recipes.Search)
		auth.GET("/recipes/:id", m.Recipes.Detail)
		auth.PUT("/recipes/:id", m.Recipes.Update)
		auth.PATCH("/recipes/:id", m.Recipes.Update)
		auth.DELETE("/recipes/:id", m.Recipes.Delete)
		auth.POST("/recipes/:id/image", m.Recipes.UploadImage)
	}
}
