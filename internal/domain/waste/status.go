package waste

import (
	"database/sql/driver"
	"fmt"
	"slices"
)

// Status is the forward-only lifecycle state of a waste report
type Status string

const (
	StatusReported  Status = "reported"
	StatusAssigned  Status = "assigned"
	StatusCollected Status = "collected"
	StatusProcessed Status = "processed"
)

func (s Status) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known values
func (s Status) Valid() bool {
	switch s {
	case StatusReported, StatusAssigned, StatusCollected, StatusProcessed:
		return true
	}
	return false
}

// CanTransitionTo checks if the report can move to a new status. The
// lifecycle is monotonic: reported -> assigned -> collected -> processed,
// one step at a time, never backwards.
func (s Status) CanTransitionTo(newStatus Status) bool {
	transitions := map[Status][]Status{
		StatusReported:  {StatusAssigned},
		StatusAssigned:  {StatusCollected},
		StatusCollected: {StatusProcessed},
		StatusProcessed: {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	return slices.Contains(allowed, newStatus)
}

// StatusFromString converts a string to a Status
func StatusFromString(v string) (Status, bool) {
	s := Status(v)
	return s, s.Valid()
}

// Scan implements the sql.Scanner interface for database deserialization
func (s *Status) Scan(value interface{}) error {
	if value == nil {
		*s = StatusReported
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into waste Status", value)
	}

	status, valid := StatusFromString(str)
	if !valid {
		return fmt.Errorf("invalid waste status value: %s", str)
	}
	*s = status
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

// Type categorizes the reported material
type Type string

const (
	TypePlastic    Type = "plastic"
	TypePaper      Type = "paper"
	TypeMetal      Type = "metal"
	TypeGlass      Type = "glass"
	TypeOrganic    Type = "organic"
	TypeElectronic Type = "electronic"
	TypeOther      Type = "other"
)

func (t Type) String() string {
	return string(t)
}

// Valid reports whether the type is one of the known values
func (t Type) Valid() bool {
	switch t {
	case TypePlastic, TypePaper, TypeMetal, TypeGlass, TypeOrganic, TypeElectronic, TypeOther:
		return true
	}
	return false
}

// TypeFromString converts a string to a Type
func TypeFromString(v string) (Type, bool) {
	t := Type(v)
	return t, t.Valid()
}

// Scan implements the sql.Scanner interface for database deserialization
func (t *Type) Scan(value interface{}) error {
	if value == nil {
		*t = TypeOther
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into waste Type", value)
	}

	wasteType, valid := TypeFromString(str)
	if !valid {
		return fmt.Errorf("invalid waste type value: %s", str)
	}
	*t = wasteType
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (t Type) Value() (driver.Value, error) {
	return string(t), nil
}

// Unit is the measurement unit of a reported quantity
type Unit string

const (
	UnitKilograms Unit = "kg"
	UnitPieces    Unit = "pieces"
)

func (u Unit) String() string {
	return string(u)
}

// Valid reports whether the unit is one of the known values
func (u Unit) Valid() bool {
	switch u {
	case UnitKilograms, UnitPieces:
		return true
	}
	return false
}

// UnitFromString converts a string to a Unit
func UnitFromString(v string) (Unit, bool) {
	u := Unit(v)
	return u, u.Valid()
}

// Scan implements the sql.Scanner interface for database deserialization
func (u *Unit) Scan(value interface{}) error {
	if value == nil {
		*u = UnitKilograms
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Unit", value)
	}

	unit, valid := UnitFromString(str)
	if !valid {
		return fmt.Errorf("invalid unit value: %s", str)
	}
	*u = unit
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (u Unit) Value() (driver.Value, error) {
	return string(u), nil
}
