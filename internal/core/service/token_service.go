package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// TokenService issues and verifies signed identity tokens. Verification needs
// only the shared secret; no external lookup is involved.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces an HS256-signed token embedding the identity fields with an
// absolute expiry ttl from now.
func (s *TokenService) Issue(ident domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"_id":      ident.ID,
		"name":     ident.Name,
		"email":    ident.Email,
		"is_admin": ident.IsAdmin,
		"exp":      time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates the signature and expiry before trusting any embedded
// field. It returns domain.ErrTokenExpired for tokens past their expiry and
// domain.ErrTokenMalformed for anything else that fails validation.
func (s *TokenService) Verify(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenMalformed
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenMalformed
	}

	ident := &domain.Identity{}
	ident.ID, _ = claims["_id"].(string)
	ident.Name, _ = claims["name"].(string)
	ident.Email, _ = claims["email"].(string)
	ident.IsAdmin, _ = claims["is_admin"].(bool)
	if ident.ID == "" {
		return nil, domain.ErrTokenMalformed
	}
	return ident, nil
}
