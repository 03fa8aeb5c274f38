package user

import (
	"database/sql/driver"
	"fmt"
)

// Role determines which operations an account is authorized to perform
type Role string

const (
	// RoleUser is a citizen: reports waste, joins events, posts on the forum
	RoleUser Role = "user"
	// RoleAdmin manages tasks, events, assignments and user roles
	RoleAdmin Role = "admin"
	// RoleWorker is field staff assigned to tasks and waste collections
	RoleWorker Role = "worker"
)

func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleWorker:
		return true
	}
	return false
}

// RoleFromString converts a string to a Role
func RoleFromString(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// Scan implements the sql.Scanner interface for database deserialization
func (r *Role) Scan(value interface{}) error {
	if value == nil {
		*r = RoleUser
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}

	role, valid := RoleFromString(str)
	if !valid {
		return fmt.Errorf("invalid role value: %s", str)
	}
	*r = role
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}
