package waste

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/common"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
)

// Waste represents a citizen waste report moving through the collection
// pipeline: reported by any user, assigned to a worker by an admin, then
// advanced by the assigned worker (or an admin) to collected and processed.
type Waste struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Type        Type            `json:"type" gorm:"type:varchar(16);not null"`
	Quantity    Quantity        `json:"quantity" gorm:"embedded;embeddedPrefix:quantity_"`
	Location    common.Location `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	Status      Status          `json:"status" gorm:"type:varchar(16);not null;default:'reported'"`
	Description string          `json:"description"`
	Images      pq.StringArray  `json:"images" gorm:"type:text[]"`

	ReportedByID uuid.UUID  `json:"reported_by_id" gorm:"type:uuid;not null"`
	ReportedBy   *user.User `json:"reported_by,omitempty" gorm:"foreignKey:ReportedByID"`
	AssignedToID *uuid.UUID `json:"assigned_to_id" gorm:"type:uuid"`
	AssignedTo   *user.User `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`

	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	CollectedAt *time.Time `json:"collected_at,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// TableName overrides the table name used by GORM
func (Waste) TableName() string {
	return "waste_reports"
}

// BeforeCreate sets a UUID before creating the record
func (w *Waste) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// Quantity is the reported amount of waste
type Quantity struct {
	Value float64 `json:"value" gorm:"column:value"`
	Unit  Unit    `json:"unit" gorm:"column:unit;type:varchar(8)"`
}

// IsAssignee checks if the given user is the report's assigned worker
func (w *Waste) IsAssignee(userID uuid.UUID) bool {
	return w.AssignedToID != nil && *w.AssignedToID == userID
}

// Advance moves the report to a new status, stamping the collection and
// processing timestamps exactly once on the transition into those states.
// A repeated identical-status update succeeds without re-stamping.
func (w *Waste) Advance(newStatus Status, now time.Time) error {
	if newStatus == w.Status {
		return nil
	}
	if !w.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", w.Status, newStatus)
	}

	w.Status = newStatus
	switch newStatus {
	case StatusCollected:
		if w.CollectedAt == nil {
			w.CollectedAt = &now
		}
	case StatusProcessed:
		if w.ProcessedAt == nil {
			w.ProcessedAt = &now
		}
	}
	return nil
}

// Validate checks if the waste report data is valid
func (w *Waste) Validate() error {
	if !w.Type.Valid() {
		return fmt.Errorf("invalid waste type: %s", w.Type)
	}
	if w.Quantity.Value <= 0 {
		return fmt.Errorf("quantity value must be positive")
	}
	if !w.Quantity.Unit.Valid() {
		return fmt.Errorf("invalid quantity unit: %s", w.Quantity.Unit)
	}
	if w.ReportedByID == uuid.Nil {
		return fmt.Errorf("reported_by is required")
	}
	if !w.Status.Valid() {
		return fmt.Errorf("invalid status: %s", w.Status)
	}
	return nil
}
