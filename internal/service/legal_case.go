package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseService handles business logic for legal cases and their child
// tasks and documents
type CaseService struct {
	cases      repository.CaseRepositoryInterface
	tasks      repository.TaskRepositoryInterface
	documents  repository.DocumentRepositoryInterface
	tenants    repository.TenantRepositoryInterface
	guard      *IntegrityGuard
	authorizer *Authorizer
	audit      *AuditRecorder
	committer  repository.BatchCommitter
	validator  *validator.Validate
}

// NewCaseService creates a new legal case service
func NewCaseService(
	cases repository.CaseRepositoryInterface,
	tasks repository.TaskRepositoryInterface,
	documents repository.DocumentRepositoryInterface,
	tenants repository.TenantRepositoryInterface,
	guard *IntegrityGuard,
	authorizer *Authorizer,
	audit *AuditRecorder,
	committer repository.BatchCommitter,
	validator *validator.Validate,
) *CaseService {
	return &CaseService{
		cases:      cases,
		tasks:      tasks,
		documents:  documents,
		tenants:    tenants,
		guard:      guard,
		authorizer: authorizer,
		audit:      audit,
		committer:  committer,
		validator:  validator,
	}
}

// CreateCaseRequest represents the request to open a legal case
type CreateCaseRequest struct {
	OrganizationID uuid.UUID        `json:"organization_id" validate:"required"`
	PropertyID     *uuid.UUID       `json:"property_id,omitempty"`
	Title          string           `json:"title" validate:"required,max=200"`
	Plaintiff      models.CaseParty `json:"plaintiff"`
	OpposingParty  models.CaseParty `json:"opposing_party"`
	CourtReference string           `json:"court_reference" validate:"max=100"`
}

// CaseResponse represents the response data for a legal case
type CaseResponse struct {
	ID             uuid.UUID        `json:"id"`
	OrganizationID uuid.UUID        `json:"organization_id"`
	PropertyID     *uuid.UUID       `json:"property_id,omitempty"`
	Title          string           `json:"title"`
	Status         string           `json:"status"`
	Plaintiff      models.CaseParty `json:"plaintiff"`
	OpposingParty  models.CaseParty `json:"opposing_party"`
	FiledAt        *time.Time       `json:"filed_at,omitempty"`
	CourtReference string           `json:"court_reference,omitempty"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

// CreateTaskRequest represents the request to add a task to a case
type CreateTaskRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	AssigneeUserID *uuid.UUID `json:"assignee_user_id,omitempty"`
}

// TaskResponse represents the response data for a case task
type TaskResponse struct {
	ID             uuid.UUID  `json:"id"`
	CaseID         uuid.UUID  `json:"case_id"`
	Title          string     `json:"title"`
	Done           bool       `json:"done"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	AssigneeUserID *uuid.UUID `json:"assignee_user_id,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// AttachDocumentRequest represents the request to record a document on a case
type AttachDocumentRequest struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"max=100"`
	StorageKey  string `json:"storage_key" validate:"required,max=500"`
	SizeBytes   int64  `json:"size_bytes" validate:"gte=0"`
}

// DocumentResponse represents the response data for a case document
type DocumentResponse struct {
	ID          uuid.UUID `json:"id"`
	CaseID      uuid.UUID `json:"case_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type,omitempty"`
	StorageKey  string    `json:"storage_key"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   string    `json:"created_at"`
}

// CreateCase opens a legal case. Both parties must carry exactly one shape
// matching their declared kind, and a tenant-kind party must reference an
// existing tenant in the same organization.
func (s *CaseService) CreateCase(ctx context.Context, actorID uuid.UUID, req *CreateCaseRequest) (*CaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := req.Plaintiff.Validate(); err != nil {
		return nil, apperrors.NewValidationError("plaintiff", err.Error())
	}
	if err := req.OpposingParty.Validate(); err != nil {
		return nil, apperrors.NewValidationError("opposing_party", err.Error())
	}
	if _, err := s.authorizer.Authorize(actorID, req.OrganizationID, caseWriteRoles); err != nil {
		return nil, err
	}
	if err := s.checkTenantParty(req.OrganizationID, &req.Plaintiff); err != nil {
		return nil, err
	}
	if err := s.checkTenantParty(req.OrganizationID, &req.OpposingParty); err != nil {
		return nil, err
	}

	legalCase := &models.LegalCase{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: req.OrganizationID,
		PropertyID:     req.PropertyID,
		Title:          req.Title,
		Status:         models.CaseStatusOpen,
		Plaintiff:      req.Plaintiff,
		OpposingParty:  req.OpposingParty,
		CourtReference: req.CourtReference,
	}

	batch := repository.NewBatch()
	batch.Create(legalCase)
	err := s.audit.Record(batch, legalCase.OrganizationID, actorID, models.AuditActionCreate,
		"case", legalCase.ID.String(), entityPath(legalCase.OrganizationID, "cases", legalCase.ID.String()),
		nil, caseSnapshot(legalCase))
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit case create: %w", err)
	}
	return s.toCaseResponse(legalCase), nil
}

// UpdateCaseStatus transitions a case between open, pending, and closed
func (s *CaseService) UpdateCaseStatus(ctx context.Context, actorID, caseID uuid.UUID, status models.CaseStatus) (*CaseResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown case status")
	}

	legalCase, err := s.loadCase(caseID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, legalCase.OrganizationID, caseWriteRoles, CaseScope(legalCase.ID)); err != nil {
		return nil, err
	}

	before := map[string]interface{}{"status": legalCase.Status}
	legalCase.Status = status

	batch := repository.NewBatch()
	batch.Update(&models.LegalCase{BaseModel: models.BaseModel{ID: legalCase.ID}},
		map[string]interface{}{"status": status})
	err = s.audit.Record(batch, legalCase.OrganizationID, actorID, models.AuditActionUpdate,
		"case", legalCase.ID.String(), entityPath(legalCase.OrganizationID, "cases", legalCase.ID.String()),
		before, map[string]interface{}{"status": status})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit case status update: %w", err)
	}
	return s.toCaseResponse(legalCase), nil
}

// DeleteCase hard-deletes a case. Cases that still own tasks or documents
// may not be deleted; remove the children first.
func (s *CaseService) DeleteCase(ctx context.Context, actorID, caseID uuid.UUID) error {
	legalCase, err := s.loadCase(caseID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.Authorize(actorID, legalCase.OrganizationID, caseWriteRoles, CaseScope(legalCase.ID)); err != nil {
		return err
	}

	if err := s.guard.GuardCaseDelete(legalCase); err != nil {
		return err
	}

	batch := repository.NewBatch()
	batch.Delete(&models.LegalCase{BaseModel: models.BaseModel{ID: legalCase.ID}})
	err = s.audit.Record(batch, legalCase.OrganizationID, actorID, models.AuditActionDelete,
		"case", legalCase.ID.String(), entityPath(legalCase.OrganizationID, "cases", legalCase.ID.String()),
		caseSnapshot(legalCase), nil)
	if err != nil {
		return err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return fmt.Errorf("failed to commit case delete: %w", err)
	}
	return nil
}

// GetCase retrieves a case visible to the actor
func (s *CaseService) GetCase(actorID, caseID uuid.UUID) (*CaseResponse, error) {
	legalCase, err := s.loadCase(caseID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, legalCase.OrganizationID, caseReadRoles, CaseScope(legalCase.ID)); err != nil {
		return nil, err
	}
	return s.toCaseResponse(legalCase), nil
}

// ListCases retrieves the cases of an organization the actor may see
func (s *CaseService) ListCases(actorID, orgID uuid.UUID, limit, offset int) ([]CaseResponse, int64, error) {
	membership, err := s.authorizer.Authorize(actorID, orgID, caseReadRoles)
	if err != nil {
		return nil, 0, err
	}

	cases, total, err := s.cases.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cases: %w", err)
	}

	responses := make([]CaseResponse, 0, len(cases))
	for i := range cases {
		if !membership.CaseInScope(cases[i].ID) {
			continue
		}
		responses = append(responses, *s.toCaseResponse(&cases[i]))
	}
	return responses, total, nil
}

// CreateTask adds a task to a case
func (s *CaseService) CreateTask(ctx context.Context, actorID, caseID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	legalCase, err := s.loadCase(caseID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, legalCase.OrganizationID, caseWriteRoles, CaseScope(legalCase.ID)); err != nil {
		return nil, err
	}

	task := &models.Task{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: legalCase.OrganizationID,
		CaseID:         legalCase.ID,
		Title:          req.Title,
		DueAt:          req.DueAt,
		AssigneeUserID: req.AssigneeUserID,
	}

	batch := repository.NewBatch()
	batch.Create(task)
	err = s.audit.Record(batch, task.OrganizationID, actorID, models.AuditActionCreate,
		"task", task.ID.String(), entityPath(task.OrganizationID, "cases", caseID.String(), "tasks", task.ID.String()),
		nil, map[string]interface{}{"title": task.Title})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit task create: %w", err)
	}
	return s.toTaskResponse(task), nil
}

// SetTaskDone marks a task done or not done
func (s *CaseService) SetTaskDone(ctx context.Context, actorID, taskID uuid.UUID, done bool) (*TaskResponse, error) {
	task, err := s.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, task.OrganizationID, caseWriteRoles, CaseScope(task.CaseID)); err != nil {
		return nil, err
	}

	before := map[string]interface{}{"done": task.Done}
	task.Done = done

	batch := repository.NewBatch()
	batch.Update(&models.Task{BaseModel: models.BaseModel{ID: task.ID}},
		map[string]interface{}{"done": done})
	err = s.audit.Record(batch, task.OrganizationID, actorID, models.AuditActionUpdate,
		"task", task.ID.String(), entityPath(task.OrganizationID, "cases", task.CaseID.String(), "tasks", task.ID.String()),
		before, map[string]interface{}{"done": done})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit task update: %w", err)
	}
	return s.toTaskResponse(task), nil
}

// DeleteTask removes a task from its case
func (s *CaseService) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	task, err := s.loadTask(taskID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.Authorize(actorID, task.OrganizationID, caseWriteRoles, CaseScope(task.CaseID)); err != nil {
		return err
	}

	batch := repository.NewBatch()
	batch.Delete(&models.Task{BaseModel: models.BaseModel{ID: task.ID}})
	err = s.audit.Record(batch, task.OrganizationID, actorID, models.AuditActionDelete,
		"task", task.ID.String(), entityPath(task.OrganizationID, "cases", task.CaseID.String(), "tasks", task.ID.String()),
		map[string]interface{}{"title": task.Title, "done": task.Done}, nil)
	if err != nil {
		return err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return fmt.Errorf("failed to commit task delete: %w", err)
	}
	return nil
}

// ListTasks retrieves the tasks of a case
func (s *CaseService) ListTasks(actorID, caseID uuid.UUID, limit, offset int) ([]TaskResponse, int64, error) {
	legalCase, err := s.loadCase(caseID)
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.authorizer.Authorize(actorID, legalCase.OrganizationID, caseReadRoles, CaseScope(legalCase.ID)); err != nil {
		return nil, 0, err
	}

	tasks, total, err := s.tasks.ListByCase(caseID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *s.toTaskResponse(&tasks[i])
	}
	return responses, total, nil
}

// AttachDocument records a document reference on a case. The bytes live in
// external storage; only the key is kept here.
func (s *CaseService) AttachDocument(ctx context.Context, actorID, caseID uuid.UUID, req *AttachDocumentRequest) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	legalCase, err := s.loadCase(caseID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(actorID, legalCase.OrganizationID, caseWriteRoles, CaseScope(legalCase.ID)); err != nil {
		return nil, err
	}

	doc := &models.CaseDocument{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: legalCase.OrganizationID,
		CaseID:         legalCase.ID,
		FileName:       req.FileName,
		ContentType:    req.ContentType,
		StorageKey:     req.StorageKey,
		SizeBytes:      req.SizeBytes,
	}

	batch := repository.NewBatch()
	batch.Create(doc)
	err = s.audit.Record(batch, doc.OrganizationID, actorID, models.AuditActionCreate,
		"document", doc.ID.String(), entityPath(doc.OrganizationID, "cases", caseID.String(), "documents", doc.ID.String()),
		nil, map[string]interface{}{"file_name": doc.FileName})
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit document attach: %w", err)
	}
	return s.toDocumentResponse(doc), nil
}

// DetachDocument removes a document record from its case
func (s *CaseService) DetachDocument(ctx context.Context, actorID, documentID uuid.UUID) error {
	doc, err := s.loadDocument(documentID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.Authorize(actorID, doc.OrganizationID, caseWriteRoles, CaseScope(doc.CaseID)); err != nil {
		return err
	}

	batch := repository.NewBatch()
	batch.Delete(&models.CaseDocument{BaseModel: models.BaseModel{ID: doc.ID}})
	err = s.audit.Record(batch, doc.OrganizationID, actorID, models.AuditActionDelete,
		"document", doc.ID.String(), entityPath(doc.OrganizationID, "cases", doc.CaseID.String(), "documents", doc.ID.String()),
		map[string]interface{}{"file_name": doc.FileName}, nil)
	if err != nil {
		return err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return fmt.Errorf("failed to commit document detach: %w", err)
	}
	return nil
}

// ListDocuments retrieves the document records of a case
func (s *CaseService) ListDocuments(actorID, caseID uuid.UUID, limit, offset int) ([]DocumentResponse, int64, error) {
	legalCase, err := s.loadCase(caseID)
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.authorizer.Authorize(actorID, legalCase.OrganizationID, caseReadRoles, CaseScope(legalCase.ID)); err != nil {
		return nil, 0, err
	}

	docs, total, err := s.documents.ListByCase(caseID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *s.toDocumentResponse(&docs[i])
	}
	return responses, total, nil
}

// checkTenantParty verifies that a tenant-kind party references an existing
// tenant belonging to the organization
func (s *CaseService) checkTenantParty(orgID uuid.UUID, party *models.CaseParty) error {
	if party.Kind != models.PartyKindTenant {
		return nil
	}
	tenant, err := s.tenants.GetByID(party.Tenant.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTenantNotFound
		}
		return fmt.Errorf("failed to get party tenant: %w", err)
	}
	if tenant.OrganizationID != orgID {
		return apperrors.NewValidationError("tenant_id", "tenant belongs to a different organization")
	}
	return nil
}

func (s *CaseService) loadCase(caseID uuid.UUID) (*models.LegalCase, error) {
	legalCase, err := s.cases.GetByID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return legalCase, nil
}

func (s *CaseService) loadTask(taskID uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (s *CaseService) loadDocument(documentID uuid.UUID) (*models.CaseDocument, error) {
	doc, err := s.documents.GetByID(documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

func caseSnapshot(c *models.LegalCase) map[string]interface{} {
	return map[string]interface{}{
		"title":           c.Title,
		"status":          c.Status,
		"plaintiff":       c.Plaintiff,
		"opposing_party":  c.OpposingParty,
		"court_reference": c.CourtReference,
	}
}

func (s *CaseService) toCaseResponse(c *models.LegalCase) *CaseResponse {
	return &CaseResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		PropertyID:     c.PropertyID,
		Title:          c.Title,
		Status:         string(c.Status),
		Plaintiff:      c.Plaintiff,
		OpposingParty:  c.OpposingParty,
		FiledAt:        c.FiledAt,
		CourtReference: c.CourtReference,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *CaseService) toTaskResponse(t *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:             t.ID,
		CaseID:         t.CaseID,
		Title:          t.Title,
		Done:           t.Done,
		DueAt:          t.DueAt,
		AssigneeUserID: t.AssigneeUserID,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      t.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *CaseService) toDocumentResponse(d *models.CaseDocument) *DocumentResponse {
	return &DocumentResponse{
		ID:          d.ID,
		CaseID:      d.CaseID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		StorageKey:  d.StorageKey,
		SizeBytes:   d.SizeBytes,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}
