package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/apperror"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
)

// PostgresUserRepository implements UserRepository using GORM
type PostgresUserRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db:  db,
		log: logger.Repository("user"),
	}
}

func (r *PostgresUserRepository) Create(u *user.User) error {
	r.log.Debug("Creating user", "email", u.Email, "name", u.Name)

	if err := u.Validate(); err != nil {
		r.log.Error("User validation failed", "error", err)
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err)
	}

	var existing user.User
	if err := r.db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
		r.log.Error("User with email already exists", "email", u.Email)
		return fmt.Errorf("%w: email already registered", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Error("Failed to check existing user", "email", u.Email, "error", err)
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if err := r.db.Create(u).Error; err != nil {
		r.log.Error("Failed to create user", "error", err, "email", u.Email)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("User created successfully", "id", u.ID, "email", u.Email)
	return nil
}

func (r *PostgresUserRepository) GetByID(id string) (*user.User, error) {
	r.log.Debug("retrieving user by ID", "user_id", id)

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", apperror.ErrValidation)
	}

	var u user.User
	if err := r.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperror.ErrNotFound, id)
		}
		r.log.Error("Failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &u, nil
}

func (r *PostgresUserRepository) GetByEmail(email string) (*user.User, error) {
	r.log.Debug("retrieving user by email", "email", email)

	if email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", apperror.ErrValidation)
	}

	var u user.User
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperror.ErrNotFound, email)
		}
		r.log.Error("Failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

func (r *PostgresUserRepository) GetAll() ([]*user.User, error) {
	var users []*user.User
	if err := r.db.Find(&users).Error; err != nil {
		r.log.Error("Failed to get all users", "error", err)
		return nil, err
	}

	r.log.Debug("Retrieved all users", "count", len(users))
	return users, nil
}

func (r *PostgresUserRepository) GetByRole(role user.Role) ([]*user.User, error) {
	var users []*user.User
	if err := r.db.Where("role = ?", role).Find(&users).Error; err != nil {
		r.log.Error("Failed to get users by role", "role", role, "error", err)
		return nil, err
	}

	r.log.Debug("Retrieved users by role", "role", role, "count", len(users))
	return users, nil
}

func (r *PostgresUserRepository) UpdateRole(id string, role user.Role) error {
	r.log.Debug("Updating user role", "user_id", id, "role", role)

	if !role.Valid() {
		return fmt.Errorf("%w: invalid role %q", apperror.ErrValidation, role)
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid user id", apperror.ErrValidation)
	}

	result := r.db.Model(&user.User{}).Where("id = ?", userID).Update("role", role)
	if result.Error != nil {
		r.log.Error("Failed to update user role", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update user role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user %s", apperror.ErrNotFound, id)
	}

	r.log.Info("User role updated", "id", id, "role", role)
	return nil
}
