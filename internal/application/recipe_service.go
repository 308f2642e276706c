package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"recipe-api/internal/domain/entity"
	repo "recipe-api/internal/domain/repository"
	"recipe-api/pkg/helpers"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrTitleRequired = errors.New("title is required")
	ErrNotFound      = repo.ErrNotFound
)

// RecipeService owns the user-scoped tag, ingredient and recipe
// operations. Every method takes the owner's user ID and never touches
// rows owned by anyone else.
type RecipeService struct {
	Tags        repo.TagRepository
	Ingredients repo.IngredientRepository
	Recipes     repo.RecipeRepository
	GCS         *storage.Client
	GCSBucket   string
	ES          *elasticsearch.Client
	ESIndex     string
	Logger      *logrus.Logger
}

func NewRecipeService(tags repo.TagRepository, ingredients repo.IngredientRepository, recipes repo.RecipeRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *RecipeService {
	return &RecipeService{
		Tags:        tags,
		Ingredients: ingredients,
		Recipes:     recipes,
		GCS:         gcs,
		GCSBucket:   gcsBucket,
		ES:          es,
		ESIndex:     esIndex,
		Logger:      logger,
	}
}

func (s *RecipeService) CreateTag(userID, name string) (*entity.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	t := &entity.Tag{Name: name, UserID: userID}
	if err := s.Tags.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *RecipeService) ListTags(userID string) ([]entity.Tag, error) {
	return s.Tags.ListByUser(userID)
}

func (s *RecipeService) CreateIngredient(userID, name string) (*entity.Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	i := &entity.Ingredient{Name: name, UserID: userID}
	if err := s.Ingredients.Create(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *RecipeService) ListIngredients(userID string) ([]entity.Ingredient, error) {
	return s.Ingredients.ListByUser(userID)
}

type RecipeInput struct {
	Title       string
	TimeMinutes int
	Price       float64
}

func (s *RecipeService) CreateRecipe(ctx context.Context, userID string, in RecipeInput) (*entity.Recipe, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	rec := &entity.Recipe{
		Title:       in.Title,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price,
		UserID:      userID,
	}
	if err := s.Recipes.Create(rec); err != nil {
		return nil, err
	}
	s.indexRecipe(ctx, rec)
	return rec, nil
}

func (s *RecipeService) ListRecipes(userID string) ([]entity.Recipe, error) {
	return s.Recipes.ListByUser(userID)
}

func (s *RecipeService) GetRecipe(id int64, userID string) (*entity.Recipe, error) {
	return s.Recipes.GetByID(id, userID)
}

// UpdateRecipeInput carries optional fields; nil means "leave unchanged"
// so the same input serves PUT and PATCH.
type UpdateRecipeInput struct {
	Title       *string
	TimeMinutes *int
	Price       *float64
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, id int64, userID string, in UpdateRecipeInput) (*entity.Recipe, error) {
	rec, err := s.Recipes.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, ErrTitleRequired
		}
		rec.Title = *in.Title
	}
	if in.TimeMinutes != nil {
		rec.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		rec.Price = *in.Price
	}
	if err := s.Recipes.Update(rec); err != nil {
		return nil, err
	}
	s.indexRecipe(ctx, rec)
	return rec, nil
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id int64, userID string) error {
	if err := s.Recipes.Delete(id, userID); err != nil {
		return err
	}
	s.deleteRecipeIndex(ctx, id)
	return nil
}

// UploadImage stores a recipe image in GCS and records its public URL.
func (s *RecipeService) UploadImage(ctx context.Context, id int64, userID string, r io.Reader, filename, contentType string) (*entity.Recipe, error) {
	rec, err := s.Recipes.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("recipes", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	rec.ImageURL = url
	if err := s.Recipes.Update(rec); err != nil {
		return nil, err
	}
	s.indexRecipe(ctx, rec)
	return rec, nil
}

func (s *RecipeService) indexRecipe(ctx context.Context, rec *entity.Recipe) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":           rec.ID,
		"title":        rec.Title,
		"time_minutes": rec.TimeMinutes,
		"price":        rec.Price,
		"user_id":      rec.UserID,
		"updated_at":   rec.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(rec.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("recipe_id", rec.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("recipe_id", rec.ID).Warn("es index response error")
	}
}

func (s *RecipeService) deleteRecipeIndex(ctx context.Context, id int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("recipe_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// SearchRecipes runs a title match over the caller's own recipes.
func (s *RecipeService) SearchRecipes(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"match": map[string]any{"title": q},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
