package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ozstore/storefront-api/internal/core/domain"
	"github.com/ozstore/storefront-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, NewTokenService("secret", time.Hour))
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	user, token, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected stored user, got %+v", user)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token on registration")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), "", "a@b.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bob", "b@b.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _, _ = svc.Register(context.Background(), "Bob", "bob@example.com", "pass")
	if _, _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _, _ = svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret")

	user, token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	ident, err := svc.tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if ident.ID != user.ID || ident.Email != "carol@example.com" {
		t.Fatalf("token identity mismatch: %+v", ident)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo())
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	user, _, _ := svc.Register(context.Background(), "Eve", "eve@example.com", "oldpass")

	updated, token, err := svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdateInput{
		Name:     "Eve Adams",
		Email:    "eve.adams@example.com",
		Password: "newpass",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Eve Adams" || updated.Email != "eve.adams@example.com" {
		t.Fatalf("profile not updated: %+v", updated)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")) != nil {
		t.Fatalf("password not rehashed")
	}

	ident, err := svc.tokens.Verify(token)
	if err != nil {
		t.Fatalf("re-issued token does not verify: %v", err)
	}
	if ident.Name != "Eve Adams" {
		t.Fatalf("token should carry updated profile, got %+v", ident)
	}
}

func TestAuthService_UpdateProfile_KeepsPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	user, _, _ := svc.Register(context.Background(), "Frank", "frank@example.com", "keepme")

	_, _, err := svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdateInput{
		Name:  "Frank",
		Email: "frank@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "frank@example.com", "keepme"); err != nil {
		t.Fatalf("old password should still work: %v", err)
	}
}
