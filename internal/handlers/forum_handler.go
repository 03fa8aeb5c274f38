package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/forum"
	"github.com/VIT-EcoTrack/EcoTrack/internal/middleware"
	"github.com/VIT-EcoTrack/EcoTrack/internal/response"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
	"github.com/VIT-EcoTrack/EcoTrack/internal/validation"
)

type ForumHandler struct {
	forum postgres.ForumRepository
}

func NewForumHandler(forumRepo postgres.ForumRepository) *ForumHandler {
	return &ForumHandler{forum: forumRepo}
}

// ListPosts handles GET /api/forums
func (h *ForumHandler) ListPosts(c *gin.Context) {
	posts, err := h.forum.GetAllPosts()
	if err != nil {
		response.Internal(c, "Failed to list posts")
		return
	}

	response.Success(c, http.StatusOK, "", posts)
}

type CreatePostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// CreatePost handles POST /api/forums
func (h *ForumHandler) CreatePost(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := validation.ValidateMaxLength(req.Title, 200, "title"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p := &forum.Post{
		ID:       uuid.New(),
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		AuthorID: caller.ID,
	}

	if err := h.forum.CreatePost(p); err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Post created", p)
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment handles POST /api/forums/:id/comments
func (h *ForumHandler) AddComment(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	p, err := h.forum.GetPostByID(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	comment := &forum.Comment{
		ID:       uuid.New(),
		PostID:   p.ID,
		AuthorID: caller.ID,
		Content:  req.Content,
	}

	if err := h.forum.AddComment(comment); err != nil {
		response.DomainError(c, err)
		return
	}

	updated, err := h.forum.GetPostByID(p.ID.String())
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Comment added", updated)
}

// ToggleLike handles POST /api/forums/:id/like. A like by a caller who
// already likes the post removes the like instead.
func (h *ForumHandler) ToggleLike(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	p, err := h.forum.GetPostByID(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	if p.HasLiked(caller.ID) {
		err = h.forum.RemoveLike(p.ID.String(), caller.ID.String())
	} else {
		err = h.forum.AddLike(&forum.Like{PostID: p.ID, UserID: caller.ID})
	}
	if err != nil {
		response.DomainError(c, err)
		return
	}

	updated, err := h.forum.GetPostByID(p.ID.String())
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Like toggled", updated)
}
