//go:build unit || e2e

package builder

import (
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "renter@example.com",
		Password: "password123",
		Role:     "renter",
		IsActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Email:    b.Email,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}

// BuildLoginDTO is the wire-shaped login request for handler tests.
func (b *UserBuilder) BuildLoginDTO() map[string]any {
	return map[string]any{
		"email":    b.Email,
		"password": b.Password,
	}
}
