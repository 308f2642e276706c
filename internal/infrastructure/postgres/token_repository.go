package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipe-api/internal/domain/entity"
	"recipe-api/internal/domain/repository"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Create(t *entity.AuthToken) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO auth_tokens (key, user_id)
		VALUES ($1, $2)
		RETURNING created_at
	`, t.Key, t.UserID)
	return row.Scan(&t.CreatedAt)
}

func (r *TokenRepository) GetByKey(key string) (*entity.AuthToken, error) {
	return r.getWhere(`key = $1`, key)
}

func (r *TokenRepository) GetByUser(userID string) (*entity.AuthToken, error) {
	return r.getWhere(`user_id = $1`, userID)
}

func (r *TokenRepository) getWhere(cond string, arg any) (*entity.AuthToken, error) {
	ctx := context.Background()
	t := &entity.AuthToken{}

	row := r.pool.QueryRow(ctx, `
		SELECT key, user_id, created_at
		FROM auth_tokens
		WHERE `+cond, arg)

	if err := row.Scan(&t.Key, &t.UserID, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
