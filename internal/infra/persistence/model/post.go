package model

import (
	"time"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// PostCommentDocument is one comment embedded in a post.
type PostCommentDocument struct {
	CommentID string    `json:"comment_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostDocument is the stored form of a community post.
type PostDocument struct {
	ID         *surrealmodels.RecordID `json:"id,omitempty"`
	Namespace  string                  `json:"namespace"`
	AuthorID   string                  `json:"author_id"`
	AuthorName string                  `json:"author_name"`
	Type       string                  `json:"post_type"`
	Category   string                  `json:"category"`
	Content    string                  `json:"content"`
	PhotoURL   string                  `json:"photo_url,omitempty"`
	Location   string                  `json:"location,omitempty"`
	Tags       []string                `json:"tags,omitempty"`
	Likes      int                     `json:"likes"`
	LikedBy    []string                `json:"liked_by,omitempty"`
	Comments   []PostCommentDocument   `json:"comments,omitempty"`
	AppRating  int                     `json:"app_rating,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// PostFromEntity converts a domain post to its stored form.
func PostFromEntity(p *entity.Post) *PostDocument {
	comments := make([]PostCommentDocument, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, PostCommentDocument{
			CommentID: c.ID.String(),
			UserID:    c.UserID.String(),
			UserName:  c.UserName,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}

	return &PostDocument{
		ID:         NewRecordID(TablePosts, p.ID),
		Namespace:  p.Namespace.String(),
		AuthorID:   p.AuthorID.String(),
		AuthorName: p.AuthorName,
		Type:       string(p.Type),
		Category:   string(p.Category),
		Content:    p.Content,
		PhotoURL:   p.PhotoURL,
		Location:   p.Location,
		Tags:       p.Tags,
		Likes:      p.Likes,
		LikedBy:    p.LikedBy,
		Comments:   comments,
		AppRating:  p.AppRating,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToEntity converts the stored form back to the domain post.
func (d *PostDocument) ToEntity() *entity.Post {
	comments := make([]entity.PostComment, 0, len(d.Comments))
	for _, c := range d.Comments {
		commentID, _ := uuid.Parse(c.CommentID)
		userID, _ := uuid.Parse(c.UserID)
		comments = append(comments, entity.PostComment{
			ID:        commentID,
			UserID:    userID,
			UserName:  c.UserName,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}

	authorID, _ := uuid.Parse(d.AuthorID)

	return &entity.Post{
		ID:         UUIDFromRecordID(d.ID),
		Namespace:  entity.NamespaceKey(d.Namespace),
		AuthorID:   authorID,
		AuthorName: d.AuthorName,
		Type:       entity.PostType(d.Type),
		Category:   entity.PostCategory(d.Category),
		Content:    d.Content,
		PhotoURL:   d.PhotoURL,
		Location:   d.Location,
		Tags:       d.Tags,
		Likes:      d.Likes,
		LikedBy:    d.LikedBy,
		Comments:   comments,
		AppRating:  d.AppRating,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
