package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostType distinguishes photo posts from long-form blog posts.
type PostType string

const (
	PostPhoto PostType = "photo"
	PostBlog  PostType = "blog"
)

// PostCategory is the feed a post belongs to.
type PostCategory string

const (
	CategoryWeddingRave PostCategory = "wedding-rave"
	CategoryAppFeedback PostCategory = "app-feedback"
)

// PostComment is one comment on a community post.
type PostComment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is a community feed entry. Posts are owned by the author's namespace
// for mutation purposes, but the feed itself is readable by any
// authenticated user; likes and comments are open to everyone.
type Post struct {
	ID        uuid.UUID    `json:"id"`
	Namespace NamespaceKey `json:"namespace"`
	AuthorID  uuid.UUID    `json:"author_id"`
	AuthorName string      `json:"author_name"`
	Type      PostType     `json:"post_type"`
	Category  PostCategory `json:"category"`
	Content   string       `json:"content"`
	PhotoURL  string       `json:"photo_url,omitempty"`
	Location  string       `json:"location,omitempty"`
	Tags      []string     `json:"tags,omitempty"`
	Likes     int          `json:"likes"`
	LikedBy   []string     `json:"liked_by,omitempty"`
	Comments  []PostComment `json:"comments,omitempty"`
	AppRating int          `json:"app_rating,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
