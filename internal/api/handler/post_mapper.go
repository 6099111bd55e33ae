package handler

import (
	"github.com/kn1ghtm0nster/blog/internal/core/domain"
	"github.com/kn1ghtm0nster/blog/internal/core/ports"
)

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Author:    c.AuthorName,
		Content:   c.Content,
		Parent:    c.ParentID,
		CreatedAt: c.CreatedAt.UTC(),
		Moderated: c.Moderated,
	}
}

func toPostResponse(p *ports.PostWithComments) postResponse {
	comments := make([]commentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, toCommentResponse(c))
	}
	return postResponse{
		ID:            p.Post.ID,
		Title:         p.Post.Title,
		Content:       p.Post.Content,
		Author:        p.Post.AuthorName,
		AllowComments: p.Post.AllowComments,
		CreatedAt:     p.Post.CreatedAt.UTC(),
		UpdatedAt:     p.Post.UpdatedAt.UTC(),
		Comments:      comments,
	}
}
