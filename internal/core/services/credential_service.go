package services

import (
	"errors"

	"takuezy-housing/internal/config"
	"takuezy-housing/internal/core/domain"
	"takuezy-housing/internal/pkg/jwt"
	"takuezy-housing/internal/pkg/password"
)

// CredentialService hashes passwords and issues/validates bearer tokens
type CredentialService struct {
	cfg config.JWTConfig
}

// NewCredentialService creates a credential service from the JWT settings
func NewCredentialService(cfg config.JWTConfig) *CredentialService {
	return &CredentialService{cfg: cfg}
}

// Hash returns a salted bcrypt hash of pw. Passwords bcrypt cannot hash are a validation error.
func (s *CredentialService) Hash(pw string) (string, error) {
	hash, err := password.HashWithCost(pw, s.cfg.BcryptCost)
	if errors.Is(err, password.ErrTooLong) {
		return "", domain.ErrPasswordTooLong
	}
	return hash, err
}

// Verify reports whether pw matches hash; malformed hashes never match
func (s *CredentialService) Verify(pw, hash string) bool {
	return password.Verify(pw, hash)
}

// IssueToken signs a token whose subject is userID
func (s *CredentialService) IssueToken(userID string) (string, error) {
	return jwt.GenerateAccessToken(userID, s.cfg.Secret, s.cfg.AccessTTL)
}

// ValidateToken returns the token subject, or an Unauthorized error
func (s *CredentialService) ValidateToken(token string) (string, error) {
	userID, err := jwt.ValidateAccessToken(token, s.cfg.Secret)
	if err != nil {
		return "", domain.ErrCouldNotValidate
	}
	return userID, nil
}
