package services

import (
	"context"
	"errors"
	"strings"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/repositories"
	"takuezy-housing/internal/adapters/persistence/store"
	"takuezy-housing/internal/core/domain"
	"takuezy-housing/internal/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// AuthService handles registration, login and token resolution
type AuthService struct {
	userRepo    repositories.UserRepository
	credentials *CredentialService
	metrics     *metrics.Metrics
	log         *logrus.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	credentials *CredentialService,
	m *metrics.Metrics,
	log *logrus.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		credentials: credentials,
		metrics:     m,
		log:         log,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	FullName   string      `json:"full_name" validate:"required"`
	Role       domain.Role `json:"role" validate:"required,oneof=tenant landlord lodge_owner admin"`
	Email      *string     `json:"email" validate:"omitempty,email"`
	Phone      *string     `json:"phone"`
	NationalID string      `json:"national_id" validate:"required"`
	Password   string      `json:"password" validate:"required"`
}

// TokenResponse is returned by register and login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// Register creates a user and returns a token for it
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*TokenResponse, error) {
	if !input.Role.Valid() {
		return nil, domain.Validation("Invalid role")
	}

	email := blankToNil(input.Email)
	phone := blankToNil(input.Phone)
	if email == nil && phone == nil {
		return nil, domain.ErrEmailOrPhoneRequired
	}

	existing, err := s.userRepo.FindByAnyIdentifier(ctx, email, phone, input.NationalID)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUserAlreadyExists
	case err != nil && !errors.Is(err, store.ErrNoDocument):
		return nil, err
	}

	hash, err := s.credentials.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     input.FullName,
		Role:         input.Role,
		Email:        email,
		Phone:        phone,
		NationalID:   input.NationalID,
		PasswordHash: hash,
	}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.metrics.Registered()
	s.log.WithFields(logrus.Fields{"user_id": userID, "role": input.Role}).Info("👤 User registered")
	return s.token(userID)
}

// Login resolves identifier against email, phone and national id and checks the password.
// Unknown identifiers and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, identifier, pw string) (*TokenResponse, error) {
	user, err := s.userRepo.FindForLogin(ctx, identifier)
	if err != nil && !errors.Is(err, store.ErrNoDocument) {
		return nil, err
	}
	if user == nil || !s.credentials.Verify(pw, user.PasswordHash) {
		s.metrics.Login(false)
		return nil, domain.ErrInvalidCredentials
	}

	s.metrics.Login(true)
	return s.token(user.ID)
}

// CurrentUser resolves a bearer token to its user
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.credentials.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, orNotFound(err, domain.ErrCouldNotValidate)
	}
	return user, nil
}

func (s *AuthService) token(userID string) (*TokenResponse, error) {
	token, err := s.credentials.IssueToken(userID)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
