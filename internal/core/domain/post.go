package domain

import "time"

// Post is a blog entry authored by a user. Deleting the author cascades to
// the post and every comment under it.
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author"`
	AllowComments bool      `json:"allow_comments"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Comment is a reply on a post. ParentID is set for threaded replies and
// must reference a comment on the same post. Moderated is persisted but no
// moderation workflow acts on it here.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author"`
	Content    string    `json:"content"`
	ParentID   string    `json:"parent,omitempty"`
	Moderated  bool      `json:"is_moderated"`
	CreatedAt  time.Time `json:"created_at"`
}
