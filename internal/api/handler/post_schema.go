package handler

import "time"

// --- Request types ---

type createPostRequest struct {
	Title         string `json:"title"          validate:"required,max=200"`
	Content       string `json:"content"        validate:"required"`
	AllowComments *bool  `json:"allow_comments"`
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
	Parent  string `json:"parent"`
}

// --- Response types ---

type commentResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Parent    string    `json:"parent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Moderated bool      `json:"is_moderated"`
}

type postResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Content       string            `json:"content"`
	Author        string            `json:"author"`
	AllowComments bool              `json:"allow_comments"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Comments      []commentResponse `json:"comments"`
}
