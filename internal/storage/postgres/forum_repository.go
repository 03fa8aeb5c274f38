package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/apperror"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/forum"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
)

// PostgresForumRepository implements ForumRepository using GORM
type PostgresForumRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresForumRepository creates a new PostgreSQL forum repository
func NewPostgresForumRepository(db *gorm.DB) *PostgresForumRepository {
	return &PostgresForumRepository{
		db:  db,
		log: logger.Repository("forum"),
	}
}

func (r *PostgresForumRepository) CreatePost(p *forum.Post) error {
	r.log.Debug("Creating post", "title", p.Title, "author", p.AuthorID)

	if err := p.Validate(); err != nil {
		r.log.Error("Post validation failed", "error", err)
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err)
	}

	if err := r.db.Create(p).Error; err != nil {
		r.log.Error("Failed to create post", "error", err)
		return fmt.Errorf("failed to create post: %w", err)
	}

	r.log.Info("Post created successfully", "id", p.ID, "title", p.Title)
	return nil
}

func (r *PostgresForumRepository) GetPostByID(id string) (*forum.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid post id", apperror.ErrValidation)
	}

	var p forum.Post
	err = r.db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("forum_comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes").
		First(&p, "id = ?", postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", apperror.ErrNotFound, id)
		}
		r.log.Error("Failed to get post by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}

	return &p, nil
}

func (r *PostgresForumRepository) GetAllPosts() ([]*forum.Post, error) {
	var posts []*forum.Post
	err := r.db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("forum_comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		r.log.Error("Failed to get all posts", "error", err)
		return nil, err
	}

	r.log.Debug("Retrieved all posts", "count", len(posts))
	return posts, nil
}

func (r *PostgresForumRepository) AddComment(c *forum.Comment) error {
	r.log.Debug("Adding comment", "post_id", c.PostID, "author", c.AuthorID)

	if c.Content == "" {
		return fmt.Errorf("%w: content is required", apperror.ErrValidation)
	}

	if err := r.db.Create(c).Error; err != nil {
		r.log.Error("Failed to add comment", "post_id", c.PostID, "error", err)
		return fmt.Errorf("failed to add comment: %w", err)
	}

	r.log.Info("Comment added", "id", c.ID, "post_id", c.PostID)
	return nil
}

func (r *PostgresForumRepository) AddLike(l *forum.Like) error {
	r.log.Debug("Adding like", "post_id", l.PostID, "user_id", l.UserID)

	if err := r.db.Create(l).Error; err != nil {
		r.log.Error("Failed to add like", "post_id", l.PostID, "error", err)
		return fmt.Errorf("failed to add like: %w", err)
	}

	return nil
}

func (r *PostgresForumRepository) RemoveLike(postID, userID string) error {
	r.log.Debug("Removing like", "post_id", postID, "user_id", userID)

	pid, err := uuid.Parse(postID)
	if err != nil {
		return fmt.Errorf("%w: invalid post id", apperror.ErrValidation)
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id", apperror.ErrValidation)
	}

	if err := r.db.Delete(&forum.Like{}, "post_id = ? AND user_id = ?", pid, uid).Error; err != nil {
		r.log.Error("Failed to remove like", "post_id", postID, "error", err)
		return fmt.Errorf("failed to remove like: %w", err)
	}

	return nil
}
