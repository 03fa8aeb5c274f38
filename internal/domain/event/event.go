package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/common"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
)

// Event represents a community clean-up or awareness event organized by an
// admin. Participants form a set: the same user may join at most once, and
// a duplicate join is rejected rather than silently deduplicated.
type Event struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date" gorm:"not null"`
	Location    common.Location `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	Capacity    int             `json:"capacity"`
	Status      Status          `json:"status" gorm:"type:varchar(16);not null;default:'upcoming'"`

	OrganizerID  uuid.UUID   `json:"organizer_id" gorm:"type:uuid;not null"`
	Organizer    *user.User  `json:"organizer,omitempty" gorm:"foreignKey:OrganizerID"`
	Participants []user.User `json:"participants" gorm:"many2many:event_participants"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Event) TableName() string {
	return "events"
}

// BeforeCreate sets a UUID before creating the record
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsParticipant checks if the given user has already joined the event
func (e *Event) IsParticipant(userID uuid.UUID) bool {
	for _, p := range e.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the participant count has reached capacity.
// A capacity of zero means unlimited.
func (e *Event) IsFull() bool {
	return e.Capacity > 0 && len(e.Participants) >= e.Capacity
}

// Validate checks if the event data is valid
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if e.Capacity < 0 {
		return fmt.Errorf("capacity cannot be negative")
	}
	if e.OrganizerID == uuid.Nil {
		return fmt.Errorf("organizer is required")
	}
	if !e.Status.Valid() {
		return fmt.Errorf("invalid status: %s", e.Status)
	}
	return nil
}
