package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account in the waste-management platform. Accounts are
// never hard-deleted; role changes are the only admin-side mutation.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"type:varchar(16);not null;default:'user'"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate sets a UUID before creating the record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// New creates a new user with the citizen role
func New(name, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Role:         RoleUser,
		CreatedAt:    time.Now(),
	}
}

// Validate checks if the user data is valid
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("email must have a valid format")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	return nil
}

// Public is the identity projection embedded in expanded references
// (assignee, organizer, author). It never carries credentials.
type Public struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// ToPublic returns the public projection of the user
func (u *User) ToPublic() Public {
	return Public{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
