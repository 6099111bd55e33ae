package ports

import (
	"context"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
)

// PostRepository defines persistence operations for posts and comments.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns all posts, newest first.
	List(ctx context.Context) ([]*domain.Post, error)
	// PostIDsByAuthor returns the ids of all posts authored by the user,
	// ordered by creation time.
	PostIDsByAuthor(ctx context.Context, authorID string) ([]string, error)

	InsertComment(ctx context.Context, comment *domain.Comment) error
	FindCommentByID(ctx context.Context, id string) (*domain.Comment, error)
	// CommentsByPost returns the comments on a post, oldest first.
	CommentsByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	// CommentIDsByAuthor returns the ids of all comments authored by the user.
	CommentIDsByAuthor(ctx context.Context, authorID string) ([]string, error)
}
