package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"recipe-api/internal/domain/entity"
	repo "recipe-api/internal/domain/repository"
	"recipe-api/pkg/helpers"
	"recipe-api/pkg/mailer"
)

// MinPasswordLength is enforced on registration and password change.
const MinPasswordLength = 5

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrEmailTaken         = repo.ErrDuplicateEmail
)

func tokenCacheKey(key string) string {
	return "auth:token:" + key
}

// UserService owns registration, credential checks and bearer tokens.
type UserService struct {
	Users         repo.UserRepository
	Tokens        repo.TokenRepository
	Redis         *redis.Client
	Logger        *logrus.Logger
	Pub           *helpers.RabbitPublisher
	MailEnabled   bool
	TokenCacheTTL time.Duration
}

func NewUserService(users repo.UserRepository, tokens repo.TokenRepository, rdb *redis.Client, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool, tokenCacheTTL time.Duration) *UserService {
	return &UserService{
		Users:         users,
		Tokens:        tokens,
		Redis:         rdb,
		Logger:        logger,
		Pub:           pub,
		MailEnabled:   mailEnabled,
		TokenCacheTTL: tokenCacheTTL,
	}
}

// Register creates a user with a normalized email and a bcrypt password
// hash, then enqueues a welcome email.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*entity.User, error) {
	u, err := s.createUser(email, password, name, false)
	if err != nil {
		return nil, err
	}

	if s.Pub != nil && s.MailEnabled {
		job := mailer.EmailJob{
			To:      u.Email,
			Subject: "Welcome to Recipe API",
			Text:    "Hi " + u.Name + ",\n\nyour account is ready. Log in to start saving recipes.",
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
		}
	}

	return u, nil
}

// CreateSuperuser creates a user with staff and superuser flags set.
func (s *UserService) CreateSuperuser(email, password string) (*entity.User, error) {
	return s.createUser(email, password, "", true)
}

func (s *UserService) createUser(email, password, name string, super bool) (*entity.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:       helpers.NormalizeEmail(email),
		Password:    hash,
		Name:        name,
		IsActive:    true,
		IsStaff:     super,
		IsSuperuser: super,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate validates email/password. Unknown email, wrong password and
// inactive account all collapse into ErrInvalidCredentials.
func (s *UserService) Authenticate(email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(helpers.NormalizeEmail(email))
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken exchanges credentials for the user's bearer token, creating
// it on first login and reusing it afterwards.
func (s *UserService) IssueToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.Authenticate(email, password)
	if err != nil {
		return "", err
	}

	t, err := s.Tokens.GetByUser(u.ID)
	if errors.Is(err, repo.ErrNotFound) {
		key, kerr := helpers.GenerateTokenKey()
		if kerr != nil {
			return "", kerr
		}
		t = &entity.AuthToken{Key: key, UserID: u.ID}
		if cerr := s.Tokens.Create(t); cerr != nil {
			return "", cerr
		}
	} else if err != nil {
		return "", err
	}

	s.cacheToken(ctx, t.Key, u.ID)
	return t.Key, nil
}

// ResolveToken maps a bearer token back to its user, consulting the Redis
// cache before Postgres.
func (s *UserService) ResolveToken(ctx context.Context, key string) (*entity.User, error) {
	if key == "" {
		return nil, ErrInvalidCredentials
	}

	if s.Redis != nil {
		if uid, err := s.Redis.Get(ctx, tokenCacheKey(key)).Result(); err == nil && uid != "" {
			if u, uerr := s.Users.GetByID(uid); uerr == nil && u.IsActive {
				return u, nil
			}
		}
	}

	t, err := s.Tokens.GetByKey(key)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(t.UserID)
	if err != nil || !u.IsActive {
		return nil, ErrInvalidCredentials
	}

	s.cacheToken(ctx, key, u.ID)
	return u, nil
}

func (s *UserService) cacheToken(ctx context.Context, key, userID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Set(ctx, tokenCacheKey(key), userID, s.TokenCacheTTL).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("token cache set failed")
	}
}

func (s *UserService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name     string
	Password string
}

// UpdateProfile applies a partial update: empty fields are left untouched.
// A password change invalidates nothing -- the stored token stays valid.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Password != "" {
		if len(in.Password) < MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hash, herr := helpers.HashPassword(in.Password)
		if herr != nil {
			return nil, herr
		}
		u.Password = hash
	}
	if err := s.Users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}
