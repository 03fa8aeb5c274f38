package task

import (
	"database/sql/driver"
	"fmt"
)

// Status is the task workflow state. Unlike waste reports, task status has
// no transition ordering: the assigned worker or an admin may set any valid
// value at any time.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known values
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
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
		*s = StatusPending
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into task Status", value)
	}

	status, valid := StatusFromString(str)
	if !valid {
		return fmt.Errorf("invalid task status value: %s", str)
	}
	*s = status
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

// Priority ranks how urgently a task should be handled
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) String() string {
	return string(p)
}

// Valid reports whether the priority is one of the known values
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// PriorityFromString converts a string to a Priority
func PriorityFromString(v string) (Priority, bool) {
	p := Priority(v)
	return p, p.Valid()
}

// Scan implements the sql.Scanner interface for database deserialization
func (p *Priority) Scan(value interface{}) error {
	if value == nil {
		*p = PriorityMedium
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Priority", value)
	}

	priority, valid := PriorityFromString(str)
	if !valid {
		return fmt.Errorf("invalid priority value: %s", str)
	}
	*p = priority
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (p Priority) Value() (driver.Value, error) {
	return string(p), nil
}
