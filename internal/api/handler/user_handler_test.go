package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
	"github.com/kn1ghtm0nster/blog/internal/core/ports"
)

type stubUserService struct {
	getFn    func(ctx context.Context, requester domain.Principal, targetID string) (*ports.UserDetail, error)
	listFn   func(ctx context.Context, requester domain.Principal, input ports.ListUsersInput) (*ports.ListUsersResult, error)
	updateFn func(ctx context.Context, requester domain.Principal, targetID string, input ports.UpdateUserInput) (*ports.UserDetail, error)
	deleteFn func(ctx context.Context, requester domain.Principal, targetID string) error
}

func (s *stubUserService) Get(ctx context.Context, requester domain.Principal, targetID string) (*ports.UserDetail, error) {
	return s.getFn(ctx, requester, targetID)
}

func (s *stubUserService) List(ctx context.Context, requester domain.Principal, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	return s.listFn(ctx, requester, input)
}

func (s *stubUserService) Update(ctx context.Context, requester domain.Principal, targetID string, input ports.UpdateUserInput) (*ports.UserDetail, error) {
	return s.updateFn(ctx, requester, targetID, input)
}

func (s *stubUserService) Delete(ctx context.Context, requester domain.Principal, targetID string) error {
	return s.deleteFn(ctx, requester, targetID)
}

// newAuthedContext builds a context carrying the claims the Auth middleware
// would have injected for the given principal.
func newAuthedContext(t *testing.T, method, path, body string, p domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, path, body)
	if p.ID != "" {
		c.Set("user_id", p.ID)
		c.Set("username", p.Username)
		c.Set("admin", p.Admin)
	}
	return c, rec
}

func TestUserHandler_Get_Success(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, requester domain.Principal, targetID string) (*ports.UserDetail, error) {
			if requester.ID != "u001" || !requester.Authenticated {
				t.Fatalf("principal not forwarded: %+v", requester)
			}
			if targetID != "u002" {
				t.Fatalf("unexpected target id %q", targetID)
			}
			return &ports.UserDetail{ID: "u002", Username: "bob", Email: "bob@example.com", PostIDs: []string{"p001"}}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/v1/users/u002", "",
		domain.Principal{ID: "u001", Username: "alice", Admin: true})
	c.SetParamNames("id")
	c.SetParamValues("u002")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "bob" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if _, ok := resp["comments"].([]any); !ok {
		t.Fatalf("comments should be a JSON array, got %T", resp["comments"])
	}
}

func TestUserHandler_Get_MissingClaims(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, requester domain.Principal, targetID string) (*ports.UserDetail, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/v1/users/u002", "")
	c.SetParamNames("id")
	c.SetParamValues("u002")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestUserHandler_Get_ForbiddenPassThrough(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, requester domain.Principal, targetID string) (*ports.UserDetail, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewUserHandler(stub)

	c, _ := newAuthedContext(t, http.MethodGet, "/v1/users/u002", "",
		domain.Principal{ID: "u001", Username: "mallory"})
	c.SetParamNames("id")
	c.SetParamValues("u002")

	if err := h.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_List_PagingParams(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context, requester domain.Principal, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
			if input.Page != 2 || input.PageSize != 5 {
				t.Fatalf("paging not forwarded: %+v", input)
			}
			return &ports.ListUsersResult{
				Items:      []ports.UserDetail{{ID: "u006", Username: "frank"}},
				Total:      6,
				Page:       2,
				PageSize:   5,
				TotalPages: 2,
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/v1/users?page=2&page_size=5", "",
		domain.Principal{ID: "u001", Username: "alice", Admin: true})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	pagination, ok := resp["pagination"].(map[string]any)
	if !ok || pagination["total_pages"] != float64(2) {
		t.Fatalf("unexpected pagination: %+v", resp["pagination"])
	}
}

func TestUserHandler_List_BadPagingIgnored(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context, requester domain.Principal, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
			if input.Page != 0 || input.PageSize != 0 {
				t.Fatalf("expected zero paging for junk query, got %+v", input)
			}
			return &ports.ListUsersResult{Items: []ports.UserDetail{}, Page: 1, PageSize: 10}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/v1/users?page=abc&page_size=-",
		"", domain.Principal{ID: "u001", Admin: true})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_ForwardsPointerFields(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, requester domain.Principal, targetID string, input ports.UpdateUserInput) (*ports.UserDetail, error) {
			if input.Email == nil || *input.Email != "new@example.com" {
				t.Fatalf("email not forwarded: %+v", input)
			}
			if input.Username != nil || input.Password != nil || input.Admin != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			return &ports.UserDetail{ID: targetID, Username: "bob", Email: "new@example.com"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPatch, "/v1/users/u002",
		`{"email":"new@example.com"}`, domain.Principal{ID: "u002", Username: "bob"})
	c.SetParamNames("id")
	c.SetParamValues("u002")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_InvalidEmailRejected(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, requester domain.Principal, targetID string, input ports.UpdateUserInput) (*ports.UserDetail, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPatch, "/v1/users/u002",
		`{"email":"not-an-email"}`, domain.Principal{ID: "u002", Username: "bob"})
	c.SetParamNames("id")
	c.SetParamValues("u002")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Update_AdminFieldForbiddenPassThrough(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, requester domain.Principal, targetID string, input ports.UpdateUserInput) (*ports.UserDetail, error) {
			return nil, domain.ErrAdminFieldForbidden
		},
	}
	h := NewUserHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPatch, "/v1/users/u002",
		`{"admin":true}`, domain.Principal{ID: "u002", Username: "bob"})
	c.SetParamNames("id")
	c.SetParamValues("u002")

	if err := h.Update(c); !errors.Is(err, domain.ErrAdminFieldForbidden) {
		t.Fatalf("expected ErrAdminFieldForbidden, got %v", err)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	called := false
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, requester domain.Principal, targetID string) error {
			called = true
			if targetID != "u002" {
				t.Fatalf("unexpected target id %q", targetID)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthedContext(t, http.MethodDelete, "/v1/users/u002", "",
		domain.Principal{ID: "u002", Username: "bob"})
	c.SetParamNames("id")
	c.SetParamValues("u002")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not invoked")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "" {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestUserHandler_Delete_NotFoundPassThrough(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, requester domain.Principal, targetID string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newAuthedContext(t, http.MethodDelete, "/v1/users/ghost", "",
		domain.Principal{ID: "u001", Admin: true})
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
