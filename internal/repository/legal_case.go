package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseRepository handles database reads for legal cases
type CaseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// GetByID retrieves a case by ID
func (r *CaseRepository) GetByID(id uuid.UUID) (*models.LegalCase, error) {
	var legalCase models.LegalCase
	err := r.db.First(&legalCase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &legalCase, nil
}

// ListByOrganization retrieves all cases for an organization with pagination
func (r *CaseRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.LegalCase, int64, error) {
	var cases []models.LegalCase
	var total int64

	query := r.db.Model(&models.LegalCase{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("created_at desc").Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

// HasTasks probes for the existence of at least one task owned by the case.
// Bounded by Limit(1), never a full scan.
func (r *CaseRepository) HasTasks(caseID uuid.UUID) (bool, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Task{}).Where("case_id = ?", caseID).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// HasDocuments probes for the existence of at least one document owned by the case
func (r *CaseRepository) HasDocuments(caseID uuid.UUID) (bool, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.CaseDocument{}).Where("case_id = ?", caseID).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// TaskRepository handles database reads for case tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByCase retrieves all tasks for a case with pagination
func (r *TaskRepository) ListByCase(caseID uuid.UUID, limit, offset int) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	query := r.db.Model(&models.Task{}).Where("case_id = ?", caseID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("case_id = ?", caseID).
		Limit(limit).Offset(offset).Order("created_at").Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// DocumentRepository handles database reads for case documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.CaseDocument, error) {
	var doc models.CaseDocument
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByCase retrieves all documents for a case with pagination
func (r *DocumentRepository) ListByCase(caseID uuid.UUID, limit, offset int) ([]models.CaseDocument, int64, error) {
	var docs []models.CaseDocument
	var total int64

	query := r.db.Model(&models.CaseDocument{}).Where("case_id = ?", caseID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("case_id = ?", caseID).
		Limit(limit).Offset(offset).Order("created_at").Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}
