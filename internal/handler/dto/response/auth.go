package response

import (
	"courtside/internal/usecase"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func FromLogin(pair *usecase.TokenPair, view *queries.AuthorizedUserView) LoginResponse {
	return LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         FromAuthorizedUser(view),
	}
}

func FromAuthorizedUser(view *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:    view.ID,
		Email: view.Email,
		Role:  view.Role,
	}
}
