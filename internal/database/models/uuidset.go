package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// UUIDSet is an unordered set of UUIDs stored as a jsonb array.
// Membership is what matters; element order is not preserved.
type UUIDSet []uuid.UUID

// Value implements driver.Valuer for jsonb storage
func (s UUIDSet) Value() (driver.Value, error) {
	if s == nil {
		s = UUIDSet{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for jsonb storage
func (s *UUIDSet) Scan(value interface{}) error {
	if value == nil {
		*s = UUIDSet{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into UUIDSet", value)
	}
	return json.Unmarshal(raw, s)
}

// Contains reports whether the set contains the given ID
func (s UUIDSet) Contains(id uuid.UUID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add returns the set with the ID added; adding an existing ID is a no-op
func (s UUIDSet) Add(id uuid.UUID) UUIDSet {
	if s.Contains(id) {
		return s
	}
	return append(s, id)
}

// Remove returns the set with the ID removed
func (s UUIDSet) Remove(id uuid.UUID) UUIDSet {
	out := make(UUIDSet, 0, len(s))
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// UUIDList is an ordered list of UUIDs stored as a jsonb array.
// Unlike UUIDSet the element order is significant.
type UUIDList []uuid.UUID

// Value implements driver.Valuer for jsonb storage
func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		l = UUIDList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage
func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = UUIDList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into UUIDList", value)
	}
	return json.Unmarshal(raw, l)
}

// Contains reports whether the list contains the given ID
func (l UUIDList) Contains(id uuid.UUID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
