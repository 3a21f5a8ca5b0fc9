package ports

import (
	"context"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

// ProfileUpdateInput carries changes to the requester's own profile.
// Password is optional; empty means keep the current one.
type ProfileUpdateInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService defines account use cases. Register and Login return a freshly
// issued identity token alongside the user; UpdateProfile re-issues one so the
// client's credential reflects the new profile fields.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileUpdateInput) (*domain.User, string, error)
}
