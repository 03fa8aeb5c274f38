package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/apperror"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/task"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
)

// PostgresTaskRepository implements TaskRepository using GORM
type PostgresTaskRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresTaskRepository creates a new PostgreSQL task repository
func NewPostgresTaskRepository(db *gorm.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{
		db:  db,
		log: logger.Repository("task"),
	}
}

func (r *PostgresTaskRepository) Create(t *task.Task) error {
	r.log.Debug("Creating task", "title", t.Title, "priority", t.Priority)

	if err := t.Validate(); err != nil {
		r.log.Error("Task validation failed", "error", err)
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err)
	}

	if err := r.db.Create(t).Error; err != nil {
		r.log.Error("Failed to create task", "error", err)
		return fmt.Errorf("failed to create task: %w", err)
	}

	r.log.Info("Task created successfully", "id", t.ID, "title", t.Title)
	return nil
}

func (r *PostgresTaskRepository) GetByID(id string) (*task.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid task id", apperror.ErrValidation)
	}

	var t task.Task
	if err := r.db.Preload("AssignedTo").Preload("AssignedBy").First(&t, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %s", apperror.ErrNotFound, id)
		}
		r.log.Error("Failed to get task by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get task by ID: %w", err)
	}

	return &t, nil
}

func (r *PostgresTaskRepository) GetAll() ([]*task.Task, error) {
	var tasks []*task.Task
	if err := r.db.Preload("AssignedTo").Preload("AssignedBy").Order("created_at DESC").Find(&tasks).Error; err != nil {
		r.log.Error("Failed to get all tasks", "error", err)
		return nil, err
	}

	r.log.Debug("Retrieved all tasks", "count", len(tasks))
	return tasks, nil
}

func (r *PostgresTaskRepository) GetByAssignee(workerID string) ([]*task.Task, error) {
	id, err := uuid.Parse(workerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid worker id", apperror.ErrValidation)
	}

	var tasks []*task.Task
	if err := r.db.Preload("AssignedBy").Where("assigned_to_id = ?", id).Order("created_at DESC").Find(&tasks).Error; err != nil {
		r.log.Error("Failed to get tasks by assignee", "worker_id", workerID, "error", err)
		return nil, err
	}

	r.log.Debug("Retrieved tasks by assignee", "worker_id", workerID, "count", len(tasks))
	return tasks, nil
}

func (r *PostgresTaskRepository) UpdateStatus(id string, status task.Status) error {
	r.log.Debug("Updating task status", "task_id", id, "status", status)

	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", apperror.ErrValidation, status)
	}

	taskID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid task id", apperror.ErrValidation)
	}

	result := r.db.Model(&task.Task{}).Where("id = ?", taskID).Update("status", status)
	if result.Error != nil {
		r.log.Error("Failed to update task status", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update task status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: task %s", apperror.ErrNotFound, id)
	}

	r.log.Info("Task status updated", "id", id, "status", status)
	return nil
}
