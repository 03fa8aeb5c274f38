package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/apperror"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/waste"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
)

// PostgresWasteRepository implements WasteRepository using GORM
type PostgresWasteRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresWasteRepository creates a new PostgreSQL waste repository
func NewPostgresWasteRepository(db *gorm.DB) *PostgresWasteRepository {
	return &PostgresWasteRepository{
		db:  db,
		log: logger.Repository("waste"),
	}
}

func (r *PostgresWasteRepository) Create(w *waste.Waste) error {
	r.log.Debug("Creating waste report", "type", w.Type, "reporter", w.ReportedByID)

	if err := w.Validate(); err != nil {
		r.log.Error("Waste report validation failed", "error", err)
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err)
	}

	if err := r.db.Create(w).Error; err != nil {
		r.log.Error("Failed to create waste report", "error", err)
		return fmt.Errorf("failed to create waste report: %w", err)
	}

	r.log.Info("Waste report created", "id", w.ID, "type", w.Type)
	return nil
}

func (r *PostgresWasteRepository) GetByID(id string) (*waste.Waste, error) {
	wasteID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid waste report id", apperror.ErrValidation)
	}

	var w waste.Waste
	if err := r.db.Preload("ReportedBy").Preload("AssignedTo").First(&w, "id = ?", wasteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: waste report %s", apperror.ErrNotFound, id)
		}
		r.log.Error("Failed to get waste report by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get waste report by ID: %w", err)
	}

	return &w, nil
}

func (r *PostgresWasteRepository) GetAll() ([]*waste.Waste, error) {
	var reports []*waste.Waste
	if err := r.db.Preload("ReportedBy").Preload("AssignedTo").Order("created_at DESC").Find(&reports).Error; err != nil {
		r.log.Error("Failed to get all waste reports", "error", err)
		return nil, err
	}

	r.log.Debug("Retrieved all waste reports", "count", len(reports))
	return reports, nil
}

func (r *PostgresWasteRepository) GetByAssignee(workerID string) ([]*waste.Waste, error) {
	id, err := uuid.Parse(workerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid worker id", apperror.ErrValidation)
	}

	var reports []*waste.Waste
	if err := r.db.Preload("ReportedBy").Where("assigned_to_id = ?", id).Order("created_at DESC").Find(&reports).Error; err != nil {
		r.log.Error("Failed to get waste reports by assignee", "worker_id", workerID, "error", err)
		return nil, err
	}

	r.log.Debug("Retrieved waste reports by assignee", "worker_id", workerID, "count", len(reports))
	return reports, nil
}

func (r *PostgresWasteRepository) Update(w *waste.Waste) error {
	r.log.Debug("Updating waste report", "id", w.ID, "status", w.Status)

	if err := w.Validate(); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err)
	}

	if err := r.db.Save(w).Error; err != nil {
		r.log.Error("Failed to update waste report", "id", w.ID, "error", err)
		return fmt.Errorf("failed to update waste report: %w", err)
	}

	r.log.Info("Waste report updated", "id", w.ID, "status", w.Status)
	return nil
}
