package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/soundwave/internal/auth"
	"github.com/spec-kit/soundwave/internal/config"
	"github.com/spec-kit/soundwave/internal/domain"
	"github.com/spec-kit/soundwave/internal/events"
	"github.com/spec-kit/soundwave/internal/repository"
	apperrors "github.com/spec-kit/soundwave/pkg/util"
)

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	assignRole auth.RoleAssigner
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	RoleAssign auth.RoleAssigner
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	assign := deps.RoleAssign
	if assign == nil {
		assign = auth.DomainSuffixRoleAssigner(cfg.Auth.ArtistEmailDomain)
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		assignRole: assign,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Signup creates a new account. The role comes from the injected assignment
// policy; artist accounts get their companion profile row in the same
// transaction.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateEmail()
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         s.assignRole(email),
	}

	if user.Role == domain.RoleArtist {
		err = s.users.CreateWithArtist(ctx, user)
	} else {
		err = s.users.Create(ctx, user)
	}
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserSignedUp,
			Timestamp: time.Now(),
			Payload:   events.UserSignedUpPayload{UserID: user.ID, Role: user.Role},
		})
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for the gatekeeper.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
