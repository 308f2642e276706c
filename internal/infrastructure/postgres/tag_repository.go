package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"recipe-api/internal/domain/entity"
	"recipe-api/internal/domain/repository"
)

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func (r *TagRepository) Create(t *entity.Tag) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tags (name, user_id)
		VALUES ($1, $2)
		RETURNING id
	`, t.Name, t.UserID)
	return row.Scan(&t.ID)
}

func (r *TagRepository) ListByUser(userID string) ([]entity.Tag, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, user_id
		FROM tags
		WHERE user_id = $1
		ORDER BY name DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []entity.Tag{}
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.UserID); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

var _ repository.TagRepository = (*TagRepository)(nil)
