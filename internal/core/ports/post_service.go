package ports

import (
	"context"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
)

// CreatePostInput carries the data for a new blog post. The author is taken
// from the authenticated principal, never from the payload.
type CreatePostInput struct {
	Title         string
	Content       string
	AllowComments bool
}

// CreateCommentInput carries the data for a new comment. ParentID is empty
// for top-level comments and must reference a comment on the same post when
// set.
type CreateCommentInput struct {
	PostID   string
	Content  string
	ParentID string
}

// PostWithComments pairs a post with its comments, oldest comment first.
type PostWithComments struct {
	Post     *domain.Post
	Comments []*domain.Comment
}

// PostService defines blog use cases. Reads are public; writes require an
// authenticated principal.
type PostService interface {
	Create(ctx context.Context, author domain.Principal, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id string) (*PostWithComments, error)
	List(ctx context.Context) ([]*PostWithComments, error)
	AddComment(ctx context.Context, author domain.Principal, input CreateCommentInput) (*domain.Comment, error)
}
