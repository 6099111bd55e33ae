package ports

import (
	"context"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
// PasswordConfirm must match Password; the pair is validated before hashing.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

// AuthService implements registration and login. Both return a signed access
// token alongside the account; tokens are stateless and never revoked.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
