package service

import (
	"encoding/json"
	"fmt"
	"time"

	"property-portal-backend/internal/database/models"
	"property-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// AuditRecorder appends immutable audit entries to mutation batches. The
// entry always rides in the same batch as the mutation it describes, so a
// mutation can never land without its audit record.
type AuditRecorder struct {
	now func() time.Time
}

// NewAuditRecorder creates a new audit recorder
func NewAuditRecorder() *AuditRecorder {
	return &AuditRecorder{now: time.Now}
}

// Record marshals the before/after snapshots and queues the audit entry onto
// the batch. Snapshots are partial: callers pass only changed or interesting
// fields, and nil means no snapshot for that side.
func (r *AuditRecorder) Record(batch *repository.Batch, orgID, actorUserID uuid.UUID,
	action models.AuditAction, entityType, entityID, entityPath string,
	before, after interface{}) error {

	entry := &models.AuditLogEntry{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ActorUserID:    actorUserID,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		EntityPath:     entityPath,
		CreatedAt:      r.now(),
	}

	if before != nil {
		raw, err := json.Marshal(before)
		if err != nil {
			return fmt.Errorf("failed to marshal before snapshot: %w", err)
		}
		entry.Before = raw
	}
	if after != nil {
		raw, err := json.Marshal(after)
		if err != nil {
			return fmt.Errorf("failed to marshal after snapshot: %w", err)
		}
		entry.After = raw
	}

	batch.Create(entry)
	return nil
}

// AuditService exposes read access to the audit trail. Only admins and
// accounting may browse it.
type AuditService struct {
	entries    repository.AuditRepositoryInterface
	authorizer *Authorizer
}

// NewAuditService creates a new audit query service
func NewAuditService(entries repository.AuditRepositoryInterface, authorizer *Authorizer) *AuditService {
	return &AuditService{entries: entries, authorizer: authorizer}
}

// AuditEntryResponse represents a single audit trail entry
type AuditEntryResponse struct {
	ID          uuid.UUID          `json:"id"`
	ActorUserID uuid.UUID          `json:"actor_user_id"`
	Action      models.AuditAction `json:"action"`
	EntityType  string             `json:"entity_type"`
	EntityID    string             `json:"entity_id"`
	EntityPath  string             `json:"entity_path"`
	Before      json.RawMessage    `json:"before,omitempty"`
	After       json.RawMessage    `json:"after,omitempty"`
	CreatedAt   string             `json:"created_at"`
}

// ListByOrganization retrieves the audit trail of an organization, newest first
func (s *AuditService) ListByOrganization(actorID, orgID uuid.UUID, limit, offset int) ([]AuditEntryResponse, int64, error) {
	if _, err := s.authorizer.Authorize(actorID, orgID, auditReadRoles); err != nil {
		return nil, 0, err
	}
	entries, total, err := s.entries.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}
	responses := make([]AuditEntryResponse, len(entries))
	for i := range entries {
		responses[i] = toAuditEntryResponse(&entries[i])
	}
	return responses, total, nil
}

// ListByEntity retrieves the audit trail of a single entity
func (s *AuditService) ListByEntity(actorID, orgID uuid.UUID, entityType, entityID string) ([]AuditEntryResponse, error) {
	if _, err := s.authorizer.Authorize(actorID, orgID, auditReadRoles); err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByEntity(orgID, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	responses := make([]AuditEntryResponse, len(entries))
	for i := range entries {
		responses[i] = toAuditEntryResponse(&entries[i])
	}
	return responses, nil
}

func toAuditEntryResponse(e *models.AuditLogEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          e.ID,
		ActorUserID: e.ActorUserID,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		EntityPath:  e.EntityPath,
		Before:      e.Before,
		After:       e.After,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

// entityPath builds the hierarchical path recorded on audit entries
func entityPath(orgID uuid.UUID, segments ...string) string {
	path := "organizations/" + orgID.String()
	for _, s := range segments {
		path += "/" + s
	}
	return path
}
