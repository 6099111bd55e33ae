package handler

// --- Request types ---

// updateUserRequest is a partial update: nil means "leave unchanged". The
// field set here is the complete mutable surface exposed over HTTP.
type updateUserRequest struct {
	Username  *string `json:"username"  validate:"omitempty,min=3,max=150"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Password  *string `json:"password"`
	Password2 *string `json:"password2"`
	Admin     *bool   `json:"admin"`
}

// --- Response types ---

// userDetailResponse is the public projection of an account. blog_posts and
// comments carry the ids of the content the user authored.
type userDetailResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Admin     bool     `json:"admin"`
	BlogPosts []string `json:"blog_posts"`
	Comments  []string `json:"comments"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type listUsersResponse struct {
	Data       []userDetailResponse `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}
