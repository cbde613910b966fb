// Package auth resolves the calling principal from bearer tokens issued by
// the external identity provider. The core never reads ambient session state;
// handlers extract the principal here and pass it into services explicitly.
package auth

import (
	"fmt"

	"family-finance-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims are the token claims the identity provider signs for us
type AuthClaims struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the verified identity every core operation receives
type Principal struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Email          string
	Role           string
}

// AuthService verifies bearer tokens
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{secret: []byte(cfg.JWTSecret)}
}

// ValidateJWT parses and verifies a token and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Principal converts verified claims into a typed principal
func (c *AuthClaims) Principal() (*Principal, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}
	orgID, err := uuid.Parse(c.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization_id claim: %w", err)
	}
	return &Principal{
		UserID:         userID,
		OrganizationID: orgID,
		Email:          c.Email,
		Role:           c.Role,
	}, nil
}
