package postgres

import (
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/event"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/forum"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/task"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/waste"
)

// UserRepository defines the persistence operations for accounts
type UserRepository interface {
	Create(u *user.User) error
	GetByID(id string) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	GetAll() ([]*user.User, error)
	GetByRole(role user.Role) ([]*user.User, error)
	UpdateRole(id string, role user.Role) error
}

// TaskRepository defines the persistence operations for tasks
type TaskRepository interface {
	Create(t *task.Task) error
	GetByID(id string) (*task.Task, error)
	GetAll() ([]*task.Task, error)
	GetByAssignee(workerID string) ([]*task.Task, error)
	UpdateStatus(id string, status task.Status) error
}

// EventRepository defines the persistence operations for community events
type EventRepository interface {
	Create(e *event.Event) error
	GetByID(id string) (*event.Event, error)
	GetAll() ([]*event.Event, error)
	AddParticipant(eventID, userID string) error
	UpdateStatus(id string, status event.Status) error
}

// ForumRepository defines the persistence operations for forum posts
type ForumRepository interface {
	CreatePost(p *forum.Post) error
	GetPostByID(id string) (*forum.Post, error)
	GetAllPosts() ([]*forum.Post, error)
	AddComment(c *forum.Comment) error
	AddLike(l *forum.Like) error
	RemoveLike(postID, userID string) error
}

// WasteRepository defines the persistence operations for waste reports
type WasteRepository interface {
	Create(w *waste.Waste) error
	GetByID(id string) (*waste.Waste, error)
	GetAll() ([]*waste.Waste, error)
	GetByAssignee(workerID string) ([]*waste.Waste, error)
	Update(w *waste.Waste) error
}
