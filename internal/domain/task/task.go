package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/common"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
)

// Task represents a work item assigned by an admin to a field worker
type Task struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description"`
	Status      Status          `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	Priority    Priority        `json:"priority" gorm:"type:varchar(16);not null;default:'medium'"`
	Location    common.Location `json:"location" gorm:"embedded;embeddedPrefix:location_"`

	AssignedToID *uuid.UUID `json:"assigned_to_id" gorm:"type:uuid"`
	AssignedTo   *user.User `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
	AssignedByID uuid.UUID  `json:"assigned_by_id" gorm:"type:uuid;not null"`
	AssignedBy   *user.User `json:"assigned_by,omitempty" gorm:"foreignKey:AssignedByID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Task) TableName() string {
	return "tasks"
}

// BeforeCreate sets a UUID before creating the record
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsAssignee checks if the given user is the task's assigned worker
func (t *Task) IsAssignee(userID uuid.UUID) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}

// Validate checks if the task data is valid
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if t.AssignedByID == uuid.Nil {
		return fmt.Errorf("assigned_by is required")
	}
	if !t.Status.Valid() {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}
	return nil
}
