package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ozstore/storefront-api/internal/core/domain"
	"github.com/ozstore/storefront-api/internal/core/ports"
)

type stubAuthService struct {
	loginErr   error
	updatedID  string
	updatedIn  ports.ProfileUpdateInput
}

func (s *stubAuthService) Register(_ context.Context, name, email, _ string) (*domain.User, string, error) {
	return &domain.User{ID: "u1", Name: name, Email: email}, "token-1", nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*domain.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return &domain.User{ID: "u1", Email: email}, "token-1", nil
}

func (s *stubAuthService) UpdateProfile(_ context.Context, userID string, in ports.ProfileUpdateInput) (*domain.User, string, error) {
	s.updatedID = userID
	s.updatedIn = in
	return &domain.User{ID: userID, Name: in.Name, Email: in.Email}, "token-2", nil
}

func TestAuthHandler_Register(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"name": "Alice", "email": "alice@example.com", "password": "secret1"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/register", body, nil)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" || resp.User == nil || resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"name": "Alice", "email": "alice@example.com", "password": "abc"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/register", body, nil)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_UnknownEmailReadsAsInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrUserNotFound})

	body := `{"email": "ghost@example.com", "password": "whatever"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/login", body, nil)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	ident := domain.Identity{ID: "u1", Name: "Alice"}
	body := `{"name": "Alice B", "email": "aliceb@example.com"}`
	c, rec := newTestContext(t, http.MethodPut, "/v1/auth/profile", body, &ident)

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updatedID != "u1" {
		t.Fatalf("profile must target the requester, got %q", svc.updatedID)
	}
	if svc.updatedIn.Password != "" {
		t.Fatalf("omitted password should stay empty, got %q", svc.updatedIn.Password)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "token-2" {
		t.Fatalf("expected re-issued token, got %q", resp.Token)
	}
}

func TestAuthHandler_UpdateProfile_NoIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"name": "Alice B", "email": "aliceb@example.com"}`
	c, _ := newTestContext(t, http.MethodPut, "/v1/auth/profile", body, nil)

	err := h.UpdateProfile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
