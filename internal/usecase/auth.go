package usecase

import (
	"context"

	"courtside/internal/domain/user"
	"courtside/internal/infra"
	"courtside/internal/pkg/errs"
	"courtside/internal/pkg/jwt"
	"courtside/internal/pkg/password"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type UserRepository interface {
	// FindByEmail also returns the stored password hash for credential checks.
	FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *queries.AuthorizedUserView, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *queries.AuthorizedUserView, error) {
	view, hash, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, errs.Wrap(err, "failed to look up user")
	}
	if !view.IsActive {
		return nil, nil, ErrUserInactive
	}
	if err := password.Compare(hash, credentials.Password().Value()); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, nil, ErrTokenGeneration
	}

	pair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, nil, err
	}

	if err := a.userRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		return nil, nil, errs.Wrap(err, "failed to update last login")
	}

	return pair, view, nil
}

func (a *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrTokenValidation
	}

	view, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to look up user")
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return a.issueTokens(view.ID, role)
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to look up user")
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	return view, nil
}

func (a *authUseCaseImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	refresh, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
