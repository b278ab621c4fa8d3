package usecase

import (
	"courtside/internal/pkg/jwt"
)

// TokenValidator is the seam the auth middleware depends on, so handler
// tests can stub token checks without signing real tokens.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (*jwt.Claims, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrTokenValidation
	}
	return claims, nil
}
