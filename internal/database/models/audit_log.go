package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLogEntry is an immutable record of who changed what. Entries are
// inserted in the same atomic batch as the mutation they describe and are
// never updated or deleted.
type AuditLogEntry struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	ActorUserID    uuid.UUID       `json:"actor_user_id" gorm:"type:uuid;not null"`
	Action         AuditAction     `json:"action" gorm:"type:varchar(30);not null"`
	EntityType     string          `json:"entity_type" gorm:"not null;size:50;index"`
	EntityID       string          `json:"entity_id" gorm:"not null;size:100"`
	EntityPath     string          `json:"entity_path" gorm:"size:300"`
	Before         json.RawMessage `json:"before,omitempty" gorm:"type:jsonb"` // partial snapshot, changed fields only
	After          json.RawMessage `json:"after,omitempty" gorm:"type:jsonb"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TableName returns the table name for AuditLogEntry
func (AuditLogEntry) TableName() string {
	return "audit_log_entries"
}
