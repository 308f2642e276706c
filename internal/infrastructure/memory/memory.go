// Package memory provides in-memory repository implementations with the
// same scoping and ordering semantics as the postgres backend. Used by
// tests and local development without a database.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"recipe-api/internal/domain/entity"
	"recipe-api/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]*entity.User{}}
}

func (r *UserRepository) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type TokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*entity.AuthToken // keyed by token key
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{tokens: map[string]*entity.AuthToken{}}
}

func (r *TokenRepository) Create(t *entity.AuthToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.CreatedAt = time.Now()
	cp := *t
	r.tokens[t.Key] = &cp
	return nil
}

func (r *TokenRepository) GetByKey(key string) (*entity.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *TokenRepository) GetByUser(userID string) (*entity.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.UserID == userID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type TagRepository struct {
	mu     sync.Mutex
	nextID int64
	tags   []entity.Tag
}

func NewTagRepository() *TagRepository { return &TagRepository{} }

func (r *TagRepository) Create(t *entity.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t.ID = r.nextID
	r.tags = append(r.tags, *t)
	return nil
}

func (r *TagRepository) ListByUser(userID string) ([]entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Tag{}
	for _, t := range r.tags {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

type IngredientRepository struct {
	mu          sync.Mutex
	nextID      int64
	ingredients []entity.Ingredient
}

func NewIngredientRepository() *IngredientRepository { return &IngredientRepository{} }

func (r *IngredientRepository) Create(i *entity.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	i.ID = r.nextID
	r.ingredients = append(r.ingredients, *i)
	return nil
}

func (r *IngredientRepository) ListByUser(userID string) ([]entity.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Ingredient{}
	for _, i := range r.ingredients {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

type RecipeRepository struct {
	mu      sync.Mutex
	nextID  int64
	recipes map[int64]*entity.Recipe
}

func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{recipes: map[int64]*entity.Recipe{}}
}

func (r *RecipeRepository) Create(rec *entity.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	cp := *rec
	r.recipes[rec.ID] = &cp
	return nil
}

func (r *RecipeRepository) ListByUser(userID string) ([]entity.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Recipe{}
	for _, rec := range r.recipes {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *RecipeRepository) GetByID(id int64, userID string) (*entity.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recipes[id]
	if !ok || rec.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *RecipeRepository) Update(rec *entity.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.recipes[rec.ID]
	if !ok || existing.UserID != rec.UserID {
		return repository.ErrNotFound
	}
	rec.UpdatedAt = time.Now()
	cp := *rec
	r.recipes[rec.ID] = &cp
	return nil
}

func (r *RecipeRepository) Delete(id int64, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recipes[id]
	if !ok || rec.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}

var (
	_ repository.UserRepository       = (*UserRepository)(nil)
	_ repository.TokenRepository      = (*TokenRepository)(nil)
	_ repository.TagRepository        = (*TagRepository)(nil)
	_ repository.IngredientRepository = (*IngredientRepository)(nil)
	_ repository.RecipeRepository     = (*RecipeRepository)(nil)
)
