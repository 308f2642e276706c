package repository

import "recipe-api/internal/domain/entity"

// TagRepository persists tags. Every read is scoped to an owning user.
type TagRepository interface {
	Create(t *entity.Tag) error
	// ListByUser returns the user's tags ordered by name descending.
	ListByUser(userID string) ([]entity.Tag, error)
}

// IngredientRepository persists ingredients, scoped like TagRepository.
type IngredientRepository interface {
	Create(i *entity.Ingredient) error
	// ListByUser returns the user's ingredients ordered by name descending.
	ListByUser(userID string) ([]entity.Ingredient, error)
}

// RecipeRepository persists recipes. Detail operations take the owner's ID
// and report ErrNotFound for rows owned by anyone else.
type RecipeRepository interface {
	Create(r *entity.Recipe) error
	// ListByUser returns the user's recipes ordered by id descending.
	ListByUser(userID string) ([]entity.Recipe, error)
	GetByID(id int64, userID string) (*entity.Recipe, error)
	Update(r *entity.Recipe) error
	Delete(id int64, userID string) error
}
