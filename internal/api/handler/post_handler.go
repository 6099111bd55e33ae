package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kn1ghtm0nster/blog/internal/api/metrics"
	"github.com/kn1ghtm0nster/blog/internal/core/ports"
)

// PostHandler handles blog post and comment endpoints.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /v1/posts — all posts with their comments, public.
//
// @Summary      List blog posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  postResponse
// @Router       /v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/posts/:id — a single post with its comments, public.
//
// @Summary      Get a blog post
// @Tags         posts
// @Produce      json
// @Param        id  path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Create handles POST /v1/posts — publishes a post authored by the caller.
//
// @Summary      Create a blog post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	allowComments := true
	if req.AllowComments != nil {
		allowComments = *req.AllowComments
	}

	post, err := h.service.Create(c.Request().Context(), principal, ports.CreatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		AllowComments: allowComments,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toPostResponse(&ports.PostWithComments{Post: post}))
}

// AddComment handles POST /v1/posts/:id/comments.
//
// @Summary      Comment on a blog post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Post id"
// @Param        body  body      createCommentRequest  true  "Comment details"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/posts/{id}/comments [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), principal, ports.CreateCommentInput{
		PostID:   c.Param("id"),
		Content:  req.Content,
		ParentID: req.Parent,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}
