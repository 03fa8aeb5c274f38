package forum

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
)

// Post is a community forum thread
type Post struct {
	ID       uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title    string         `json:"title" gorm:"not null"`
	Content  string         `json:"content" gorm:"not null"`
	Tags     pq.StringArray `json:"tags" gorm:"type:text[]"`
	AuthorID uuid.UUID      `json:"author_id" gorm:"type:uuid;not null"`
	Author   *user.User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`
	Likes    []Like    `json:"likes" gorm:"foreignKey:PostID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Post) TableName() string {
	return "forum_posts"
}

// BeforeCreate sets a UUID before creating the record
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasLiked checks if the given user currently likes the post
func (p *Post) HasLiked(userID uuid.UUID) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// Validate checks if the post data is valid
func (p *Post) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Content == "" {
		return fmt.Errorf("content is required")
	}
	if p.AuthorID == uuid.Nil {
		return fmt.Errorf("author is required")
	}
	return nil
}

// Comment is an append-only reply on a post
type Comment struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	PostID   uuid.UUID  `json:"post_id" gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID  `json:"author_id" gorm:"type:uuid;not null"`
	Author   *user.User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Content  string     `json:"content" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (Comment) TableName() string {
	return "forum_comments"
}

// BeforeCreate sets a UUID before creating the record
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Like is one row of a post's toggle set. The composite primary key makes a
// user's membership at most one row.
type Like struct {
	PostID    uuid.UUID `json:"post_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (Like) TableName() string {
	return "forum_likes"
}
