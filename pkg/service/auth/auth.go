// Package auth mints and verifies the operator tokens that guard the API.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
)

// ErrAuthDisabled is returned when no signing secret is configured.
var ErrAuthDisabled = errors.New("operator auth is disabled: AUTH_JWT_SECRET is not set")

// Service issues HS256 operator tokens.
type Service struct {
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new Service from the JWT settings.
func New(cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{cfg: cfg, logger: logger, now: time.Now}
}

// IssueToken signs a token for subject. A non-positive ttl uses the configured expiry.
func (s *Service) IssueToken(subject string, ttl time.Duration) (string, error) {
	if s.cfg == nil || s.cfg.Secret == "" {
		return "", ErrAuthDisabled
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}
	if ttl <= 0 {
		ttl = s.cfg.Expiry
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("IssueToken failed", "subject", subject, "error", err)
		return "", err
	}
	s.logger.Info("IssueToken successful", "subject", subject, "expires_at", claims.ExpiresAt.Time)
	return token, nil
}

// ParseToken verifies tokenString and returns its claims.
func (s *Service) ParseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	if s.cfg == nil || s.cfg.Secret == "" {
		return nil, ErrAuthDisabled
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return claims, nil
}
