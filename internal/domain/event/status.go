package event

import (
	"database/sql/driver"
	"fmt"
)

// Status is the admin-set event state. It is a plain overwrite field with
// no transition ordering.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known values
func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// StatusFromString converts a string to a Status
func StatusFromString(v string) (Status, bool) {
	s := Status(v)
	return s, s.Valid()
}

// Scan implements the sql.Scanner interface for database deserialization
func (s *Status) Scan(value interface{}) error {
	if value == nil {
		*s = StatusUpcoming
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into event Status", value)
	}

	status, valid := StatusFromString(str)
	if !valid {
		return fmt.Errorf("invalid event status value: %s", str)
	}
	*s = status
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}
