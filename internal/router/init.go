package router

import (
	"recipe-api/internal/application"
	"recipe-api/internal/container"
	pginfra "recipe-api/internal/infrastructure/postgres"
	handlers "recipe-api/internal/interface/http"
	"recipe-api/internal/router/modules"
)

func buildUserService() *application.UserService {
	cfg := container.GetConfig()
	return application.NewUserService(
		pginfra.NewUserRepository(container.GetPGPool()),
		pginfra.NewTokenRepository(container.GetPGPool()),
		container.GetRedis(),
		container.GetLogger(),
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
		cfg.TokenCacheTTL,
	)
}

func buildRecipeService() *application.RecipeService {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	return application.NewRecipeService(
		pginfra.NewTagRepository(pool),
		pginfra.NewIngredientRepository(pool),
		pginfra.NewRecipeRepository(pool),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetES(),
		cfg.ESRecipesIndex,
		container.GetLogger(),
	)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	users := buildUserService()
	recipes := buildRecipeService()
	logger := container.GetLogger()

	r.Add(modules.NewUserModule(handlers.NewUserHandler(users, logger), users))
	r.Add(modules.NewRecipeModule(
		handlers.NewTagHandler(recipes, logger),
		handlers.NewIngredientHandler(recipes, logger),
		handlers.NewRecipeHandler(recipes, logger),
		users,
	))
}
