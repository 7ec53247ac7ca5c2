package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/user"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/pkg/jwt"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/store"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUserNotFound           = errors.New("user not found")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	store  store.Store
	tokens jwt.Service

	now func() time.Time
}

func NewService(st store.Store, tokens jwt.Service) *Service {
	return &Service{store: st, tokens: tokens, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || in.Password == "" {
		return user.User{}, ErrInvalidInput
	}

	var existing user.User
	found, err := s.store.Get(ctx, store.UserKey(email), &existing)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if found {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.store.Set(ctx, store.UserKey(email), u, store.TTLDurable); err != nil {
		return user.User{}, ErrInternal
	}
	if err := s.store.Set(ctx, store.UserIDKey(u.ID.String()), email, store.TTLDurable); err != nil {
		return user.User{}, ErrInternal
	}

	return u.Sanitized(), nil
}

// Login verifies credentials and issues a signed, expiring token.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	var u user.User
	found, err := s.store.Get(ctx, store.UserKey(email), &u)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	if !found {
		return user.User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID.String(), u.Email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return u.Sanitized(), token, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (user.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, ErrInvalidInput
	}

	var email string
	found, err := s.store.Get(ctx, store.UserIDKey(userID), &email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if !found {
		return user.User{}, ErrUserNotFound
	}

	var u user.User
	found, err = s.store.Get(ctx, store.UserKey(email), &u)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if !found {
		return user.User{}, ErrUserNotFound
	}

	return u.Sanitized(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
