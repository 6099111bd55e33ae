package ports

import (
	"context"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
)

// ListUsersFilter carries paging parameters for the user listing.
// Results are always ordered by id ascending so pages are stable.
type ListUsersFilter struct {
	Page  int // 1-based
	Limit int // rows per page (capped at 100 by the service)
}

// UserRepository defines persistence operations for user accounts.
// Username and email are unique across all live users; violations surface as
// domain.ErrUserExists / domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// List returns a page of users ordered by id ascending plus the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	// DeleteCascade removes the user together with every post and comment the
	// user authored, all-or-nothing. A failure partway through leaves the user
	// and all dependents intact.
	DeleteCascade(ctx context.Context, id string) error
}
