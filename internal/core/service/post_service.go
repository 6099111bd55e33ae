package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
	"github.com/kn1ghtm0nster/blog/internal/core/ports"
)

// PostService implements blog post and comment use cases.
type PostService struct {
	posts ports.PostRepository
	log   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, log: log}
}

// Create publishes a new post authored by the principal.
func (s *PostService) Create(ctx context.Context, author domain.Principal, input ports.CreatePostInput) (*domain.Post, error) {
	if !author.Authenticated {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:         input.Title,
		Content:       input.Content,
		AuthorID:      author.ID,
		AuthorName:    author.Username,
		AllowComments: input.AllowComments,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.Info().Str("post_id", post.ID).Str("author_id", author.ID).Msg("post created")
	return post, nil
}

// Get returns a single post with its comments.
func (s *PostService) Get(ctx context.Context, id string) (*ports.PostWithComments, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.posts.CommentsByPost(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	return &ports.PostWithComments{Post: post, Comments: comments}, nil
}

// List returns all posts, newest first, each with its comments.
func (s *PostService) List(ctx context.Context) ([]*ports.PostWithComments, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	out := make([]*ports.PostWithComments, 0, len(posts))
	for _, p := range posts {
		comments, err := s.posts.CommentsByPost(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("load comments: %w", err)
		}
		out = append(out, &ports.PostWithComments{Post: p, Comments: comments})
	}
	return out, nil
}

// AddComment attaches a comment to a post. Threaded replies must reference a
// parent comment on the same post, and the post must allow comments.
func (s *PostService) AddComment(ctx context.Context, author domain.Principal, input ports.CreateCommentInput) (*domain.Comment, error) {
	if !author.Authenticated {
		return nil, domain.ErrForbidden
	}

	post, err := s.posts.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if !post.AllowComments {
		return nil, domain.ErrCommentsDisabled
	}

	if input.ParentID != "" {
		parent, err := s.posts.FindCommentByID(ctx, input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != post.ID {
			fe := domain.FieldErrors{}
			fe.Add("parent", "parent comment belongs to a different post")
			return nil, fe
		}
	}

	comment := &domain.Comment{
		PostID:     post.ID,
		AuthorID:   author.ID,
		AuthorName: author.Username,
		Content:    input.Content,
		ParentID:   input.ParentID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.posts.InsertComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.log.Info().Str("comment_id", comment.ID).Str("post_id", post.ID).Str("author_id", author.ID).Msg("comment added")
	return comment, nil
}
