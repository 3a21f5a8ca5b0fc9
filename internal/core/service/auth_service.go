package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ozstore/storefront-api/internal/core/domain"
	"github.com/ozstore/storefront-api/internal/core/ports"
)

// AuthService implements registration, login, and profile updates.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.Identity())
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// UpdateProfile changes the requester's own name/email and optionally the
// password, then re-issues a token carrying the new profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ports.ProfileUpdateInput) (*domain.User, string, error) {
	if in.Name == "" || in.Email == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	user.Name = in.Name
	user.Email = in.Email
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(updated.Identity())
	if err != nil {
		return nil, "", err
	}
	return updated, token, nil
}
