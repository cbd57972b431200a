package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gospelarchive/core/internal/application/router"
	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/config"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/ports"
)

// Claims represents the admin session token claims
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// AuthService is the single-administrator gate. The credential pair is
// compared verbatim against configuration — this is a demo-grade gate ported
// for parity with the original site, NOT a security boundary. Real
// authentication would need server-side credential storage and hashing,
// redesigned from scratch.
type AuthService struct {
	config config.AdminConfig
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AdminConfig, logger *logger.Logger) *AuthService {
	return &AuthService{
		config: cfg,
		logger: logger.WithComponent("auth_service"),
	}
}

// Login checks the credential pair and issues the admin session token. Any
// mismatch yields the same generic error.
func (s *AuthService) Login(req ports.LoginRequest) (*ports.LoginResponse, error) {
	if req.ID != s.config.ID || req.Password != s.config.Password {
		return nil, entities.ErrInvalidCredentials
	}

	token, err := s.generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin token: %w", err)
	}

	return &ports.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.config.TokenTTL.Seconds()),
		Redirect:  router.AdminPrefix,
	}, nil
}

// Logout clears nothing server-side (the token is discarded by the client);
// it exists for parity and tells the client where to navigate.
func (s *AuthService) Logout() *ports.LogoutResponse {
	return &ports.LogoutResponse{Redirect: router.HomeFragment}
}

// ValidateToken parses and verifies an admin session token.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.Admin {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) generateToken() (string, error) {
	now := time.Now()
	claims := &Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.config.Issuer,
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
