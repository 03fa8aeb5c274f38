package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/apperror"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/event"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
)

// PostgresEventRepository implements EventRepository using GORM
type PostgresEventRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresEventRepository creates a new PostgreSQL event repository
func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{
		db:  db,
		log: logger.Repository("event"),
	}
}

func (r *PostgresEventRepository) Create(e *event.Event) error {
	r.log.Debug("Creating event", "title", e.Title, "organizer", e.OrganizerID)

	if err := e.Validate(); err != nil {
		r.log.Error("Event validation failed", "error", err)
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err)
	}

	if err := r.db.Create(e).Error; err != nil {
		r.log.Error("Failed to create event", "error", err)
		return fmt.Errorf("failed to create event: %w", err)
	}

	r.log.Info("Event created successfully", "id", e.ID, "title", e.Title)
	return nil
}

func (r *PostgresEventRepository) GetByID(id string) (*event.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id", apperror.ErrValidation)
	}

	var e event.Event
	if err := r.db.Preload("Organizer").Preload("Participants").First(&e, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event %s", apperror.ErrNotFound, id)
		}
		r.log.Error("Failed to get event by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}

	return &e, nil
}

func (r *PostgresEventRepository) GetAll() ([]*event.Event, error) {
	var events []*event.Event
	if err := r.db.Preload("Organizer").Preload("Participants").Order("date ASC").Find(&events).Error; err != nil {
		r.log.Error("Failed to get all events", "error", err)
		return nil, err
	}

	r.log.Debug("Retrieved all events", "count", len(events))
	return events, nil
}

func (r *PostgresEventRepository) AddParticipant(eventID, userID string) error {
	r.log.Debug("Adding participant", "event_id", eventID, "user_id", userID)

	eid, err := uuid.Parse(eventID)
	if err != nil {
		return fmt.Errorf("%w: invalid event id", apperror.ErrValidation)
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id", apperror.ErrValidation)
	}

	e := event.Event{ID: eid}
	if err := r.db.Model(&e).Association("Participants").Append(&user.User{ID: uid}); err != nil {
		r.log.Error("Failed to add participant", "event_id", eventID, "user_id", userID, "error", err)
		return fmt.Errorf("failed to add participant: %w", err)
	}

	r.log.Info("Participant added", "event_id", eventID, "user_id", userID)
	return nil
}

func (r *PostgresEventRepository) UpdateStatus(id string, status event.Status) error {
	r.log.Debug("Updating event status", "event_id", id, "status", status)

	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", apperror.ErrValidation, status)
	}

	eventID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid event id", apperror.ErrValidation)
	}

	result := r.db.Model(&event.Event{}).Where("id = ?", eventID).Update("status", status)
	if result.Error != nil {
		r.log.Error("Failed to update event status", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update event status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: event %s", apperror.ErrNotFound, id)
	}

	r.log.Info("Event status updated", "id", id, "status", status)
	return nil
}
