package ports

import (
	"context"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
)

// UpdateUserInput is a partial-update request. Nil means "leave unchanged";
// the field set below is the complete mutable surface of a user record.
type UpdateUserInput struct {
	Username        *string
	Email           *string
	Password        *string
	PasswordConfirm *string
	Admin           *bool
}

// UserDetail is the public projection of an account, including the ids of
// the content the user authored.
type UserDetail struct {
	ID         string
	Username   string
	Email      string
	Admin      bool
	PostIDs    []string
	CommentIDs []string
}

// ListUsersInput carries paging parameters for the admin user listing.
type ListUsersInput struct {
	Page     int
	PageSize int
}

// ListUsersResult is one stable page of users ordered by id ascending.
type ListUsersResult struct {
	Items      []UserDetail
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// UserService defines the self-service and admin operations on accounts.
// Every method takes the requesting principal explicitly and re-checks
// authorization against the freshly loaded target.
type UserService interface {
	Get(ctx context.Context, requester domain.Principal, targetID string) (*UserDetail, error)
	List(ctx context.Context, requester domain.Principal, input ListUsersInput) (*ListUsersResult, error)
	Update(ctx context.Context, requester domain.Principal, targetID string, input UpdateUserInput) (*UserDetail, error)
	Delete(ctx context.Context, requester domain.Principal, targetID string) error
}
