package service

import (
	"context"
	"errors"

	"github.com/hr-management-api/internal/auth"
	"github.com/hr-management-api/internal/models"
	"github.com/hr-management-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService
type authService struct {
	repos  *repository.Repositories
	tokens *auth.TokenManager
	log    zerolog.Logger
}

// newAuthService creates a new AuthService
func newAuthService(repos *repository.Repositories, tokens *auth.TokenManager, log zerolog.Logger) *authService {
	return &authService{
		repos:  repos,
		tokens: tokens,
		log:    log.With().Str("service", "auth").Logger(),
	}
}

// Login verifies credentials and issues a bearer token. Unknown emails
// and wrong passwords both fail with ErrUnauthorized so the response
// does not reveal which part was wrong.
func (s *authService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	identity, err := s.repos.Identity.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		s.log.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, models.ErrUnauthorized
	}

	token, err := s.tokens.Issue(identity.ID)
	if err != nil {
		return nil, err
	}

	profile, err := s.repos.Profile.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: profile}, nil
}
