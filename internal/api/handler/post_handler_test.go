package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
	"github.com/kn1ghtm0nster/blog/internal/core/ports"
)

type stubPostService struct {
	createFn     func(ctx context.Context, author domain.Principal, input ports.CreatePostInput) (*domain.Post, error)
	getFn        func(ctx context.Context, id string) (*ports.PostWithComments, error)
	listFn       func(ctx context.Context) ([]*ports.PostWithComments, error)
	addCommentFn func(ctx context.Context, author domain.Principal, input ports.CreateCommentInput) (*domain.Comment, error)
}

func (s *stubPostService) Create(ctx context.Context, author domain.Principal, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, author, input)
}

func (s *stubPostService) Get(ctx context.Context, id string) (*ports.PostWithComments, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) List(ctx context.Context) ([]*ports.PostWithComments, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) AddComment(ctx context.Context, author domain.Principal, input ports.CreateCommentInput) (*domain.Comment, error) {
	return s.addCommentFn(ctx, author, input)
}

func TestPostHandler_List_Success(t *testing.T) {
	now := time.Now()
	stub := &stubPostService{
		listFn: func(ctx context.Context) ([]*ports.PostWithComments, error) {
			return []*ports.PostWithComments{
				{
					Post: &domain.Post{ID: "p001", Title: "First", AuthorName: "alice", CreatedAt: now, UpdatedAt: now},
					Comments: []*domain.Comment{
						{ID: "c001", PostID: "p001", AuthorName: "bob", Content: "nice", CreatedAt: now},
					},
				},
			}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/posts", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["title"] != "First" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	comments, ok := resp[0]["comments"].([]any)
	if !ok || len(comments) != 1 {
		t.Fatalf("expected embedded comments, got %+v", resp[0]["comments"])
	}
}

func TestPostHandler_Get_NotFoundPassThrough(t *testing.T) {
	stub := &stubPostService{
		getFn: func(ctx context.Context, id string) (*ports.PostWithComments, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	h := NewPostHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/v1/posts/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Get(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostHandler_Create_Success(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, author domain.Principal, input ports.CreatePostInput) (*domain.Post, error) {
			if author.ID != "u001" || !author.Authenticated {
				t.Fatalf("principal not forwarded: %+v", author)
			}
			if !input.AllowComments {
				t.Fatalf("allow_comments should default to true when omitted")
			}
			return &domain.Post{ID: "p001", Title: input.Title, Content: input.Content, AuthorID: author.ID, AuthorName: author.Username, AllowComments: true}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/v1/posts",
		`{"title":"Hello","content":"World"}`, domain.Principal{ID: "u001", Username: "alice"})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "p001" || resp["author"] != "alice" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestPostHandler_Create_CommentsCanBeDisabled(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, author domain.Principal, input ports.CreatePostInput) (*domain.Post, error) {
			if input.AllowComments {
				t.Fatalf("explicit false must win over the default")
			}
			return &domain.Post{ID: "p001", Title: input.Title}, nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/v1/posts",
		`{"title":"Hello","content":"World","allow_comments":false}`,
		domain.Principal{ID: "u001", Username: "alice"})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestPostHandler_Create_MissingClaims(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, author domain.Principal, input ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/posts", `{"title":"Hello","content":"World"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestPostHandler_AddComment_Success(t *testing.T) {
	stub := &stubPostService{
		addCommentFn: func(ctx context.Context, author domain.Principal, input ports.CreateCommentInput) (*domain.Comment, error) {
			if input.PostID != "p001" || input.ParentID != "c001" {
				t.Fatalf("ids not forwarded: %+v", input)
			}
			return &domain.Comment{ID: "c002", PostID: "p001", AuthorName: author.Username, Content: input.Content, ParentID: input.ParentID}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/v1/posts/p001/comments",
		`{"content":"agreed","parent":"c001"}`, domain.Principal{ID: "u002", Username: "bob"})
	c.SetParamNames("id")
	c.SetParamValues("p001")

	if err := h.AddComment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "c002" || resp["parent"] != "c001" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestPostHandler_AddComment_DisabledPassThrough(t *testing.T) {
	stub := &stubPostService{
		addCommentFn: func(ctx context.Context, author domain.Principal, input ports.CreateCommentInput) (*domain.Comment, error) {
			return nil, domain.ErrCommentsDisabled
		},
	}
	h := NewPostHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/v1/posts/p001/comments",
		`{"content":"agreed"}`, domain.Principal{ID: "u002", Username: "bob"})
	c.SetParamNames("id")
	c.SetParamValues("p001")

	if err := h.AddComment(c); !errors.Is(err, domain.ErrCommentsDisabled) {
		t.Fatalf("expected ErrCommentsDisabled, got %v", err)
	}
}
