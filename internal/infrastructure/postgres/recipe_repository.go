package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipe-api/internal/domain/entity"
	"recipe-api/internal/domain/repository"
)

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

func (r *RecipeRepository) Create(rec *entity.Recipe) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO recipes (title, time_minutes, price, image_url, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, rec.Title, rec.TimeMinutes, rec.Price, rec.ImageURL, rec.UserID)
	return row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *RecipeRepository) ListByUser(userID string) ([]entity.Recipe, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, time_minutes, price, image_url, user_id, created_at, updated_at
		FROM recipes
		WHERE user_id = $1
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []entity.Recipe{}
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.TimeMinutes, &rec.Price,
			&rec.ImageURL, &rec.UserID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

// GetByID filters on owner as well as id so a foreign recipe is
// indistinguishable from a missing one.
func (r *RecipeRepository) GetByID(id int64, userID string) (*entity.Recipe, error) {
	ctx := context.Background()
	rec := &entity.Recipe{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, time_minutes, price, image_url, user_id, created_at, updated_at
		FROM recipes
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := row.Scan(&rec.ID, &rec.Title, &rec.TimeMinutes, &rec.Price,
		&rec.ImageURL, &rec.UserID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return rec, nil
}

func (r *RecipeRepository) Update(rec *entity.Recipe) error {
	ctx := context.Background()
	rec.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE recipes
		SET title = $1, time_minutes = $2, price = $3, image_url = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`, rec.Title, rec.TimeMinutes, rec.Price, rec.ImageURL, rec.UpdatedAt, rec.ID, rec.UserID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *RecipeRepository) Delete(id int64, userID string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		DELETE FROM recipes
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
