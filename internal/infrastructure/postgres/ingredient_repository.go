package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"recipe-api/internal/domain/entity"
	"recipe-api/internal/domain/repository"
)

type IngredientRepository struct {
	pool *pgxpool.Pool
}

func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{pool: pool}
}

func (r *IngredientRepository) Create(i *entity.Ingredient) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO ingredients (name, user_id)
		VALUES ($1, $2)
		RETURNING id
	`, i.Name, i.UserID)
	return row.Scan(&i.ID)
}

func (r *IngredientRepository) ListByUser(userID string) ([]entity.Ingredient, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, user_id
		FROM ingredients
		WHERE user_id = $1
		ORDER BY name DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := []entity.Ingredient{}
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.UserID); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, i)
	}
	return ingredients, rows.Err()
}

var _ repository.IngredientRepository = (*IngredientRepository)(nil)
