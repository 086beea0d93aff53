package handlers

import (
	"net/http"

	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CaseHandler handles HTTP requests for legal cases, their tasks and documents
type CaseHandler struct {
	service service.CaseServiceInterface
}

// NewCaseHandler creates a new legal case handler
func NewCaseHandler(service service.CaseServiceInterface) *CaseHandler {
	return &CaseHandler{service: service}
}

// CreateCase handles POST /api/v1/cases
// @Summary Open a legal case
// @Description Open a legal case with plaintiff and opposing party (admin or legal)
// @Tags cases
// @Accept json
// @Produce json
// @Param case body service.CreateCaseRequest true "Case data"
// @Success 201 {object} service.CaseResponse "Successfully opened case"
// @Failure 400 {object} ErrorResponse "Invalid party shape"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Security BearerAuth
// @Router /cases [post]
func (h *CaseHandler) CreateCase(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	var req service.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	legalCase, err := h.service.CreateCase(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, legalCase)
}

// GetCase handles GET /api/v1/cases/:id
// @Summary Get case by ID
// @Description Get a legal case the actor's membership scope covers
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Success 200 {object} service.CaseResponse "Successfully retrieved case"
// @Failure 403 {object} ErrorResponse "Out of scope"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /cases/{id} [get]
func (h *CaseHandler) GetCase(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	caseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	legalCase, err := h.service.GetCase(actorID, caseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, legalCase)
}

// ListCases handles GET /api/v1/organizations/:id/cases
// @Summary List cases
// @Description List the organization's legal cases visible to the actor's scope
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Cases with pagination metadata"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Security BearerAuth
// @Router /organizations/{id}/cases [get]
func (h *CaseHandler) ListCases(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	orgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	limit, offset := parsePagination(c)

	cases, total, err := h.service.ListCases(actorID, orgID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cases": cases,
		"meta":  ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// updateCaseStatusRequest is the body for case status changes
type updateCaseStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateCaseStatus handles PATCH /api/v1/cases/:id/status
// @Summary Update case status
// @Description Move a case between open, pending, and closed (admin or legal)
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Param status body updateCaseStatusRequest true "New status"
// @Success 200 {object} service.CaseResponse "Successfully updated case"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /cases/{id}/status [patch]
func (h *CaseHandler) UpdateCaseStatus(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	caseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req updateCaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	legalCase, err := h.service.UpdateCaseStatus(c.Request.Context(), actorID, caseID, models.CaseStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, legalCase)
}

// DeleteCase handles DELETE /api/v1/cases/:id
// @Summary Delete a case
// @Description Delete a legal case (admin or legal). Cases with tasks or documents cannot be deleted.
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Success 204 "Case deleted"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Failure 409 {object} ErrorResponse "Case has tasks or documents"
// @Security BearerAuth
// @Router /cases/{id} [delete]
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	caseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCase(c.Request.Context(), actorID, caseID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateTask handles POST /api/v1/cases/:id/tasks
// @Summary Add a task to a case
// @Description Add a task to a legal case (admin or legal)
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Successfully created task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /cases/{id}/tasks [post]
func (h *CaseHandler) CreateTask(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	caseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), actorID, caseID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// setTaskDoneRequest is the body for marking tasks done or not done
type setTaskDoneRequest struct {
	Done *bool `json:"done" binding:"required"`
}

// SetTaskDone handles PATCH /api/v1/tasks/:id/done
// @Summary Mark a task done
// @Description Set a task's done flag (admin or legal)
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param done body setTaskDoneRequest true "Done flag"
// @Success 200 {object} service.TaskResponse "Successfully updated task"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id}/done [patch]
func (h *CaseHandler) SetTaskDone(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req setTaskDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	task, err := h.service.SetTaskDone(c.Request.Context(), actorID, taskID, *req.Done)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/tasks/:id
// @Summary Delete a task
// @Description Delete a task from a case (admin or legal)
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Task deleted"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *CaseHandler) DeleteTask(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), actorID, taskID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTasks handles GET /api/v1/cases/:id/tasks
// @Summary List case tasks
// @Description List a case's tasks
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Tasks with pagination metadata"
// @Failure 403 {object} ErrorResponse "Out of scope"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /cases/{id}/tasks [get]
func (h *CaseHandler) ListTasks(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	caseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	limit, offset := parsePagination(c)

	tasks, total, err := h.service.ListTasks(actorID, caseID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"meta":  ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// AttachDocument handles POST /api/v1/cases/:id/documents
// @Summary Attach a document
// @Description Record a document reference on a case (admin or legal). Only the storage key is stored; file contents live in object storage.
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Param document body service.AttachDocumentRequest true "Document reference"
// @Success 201 {object} service.DocumentResponse "Successfully attached document"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /cases/{id}/documents [post]
func (h *CaseHandler) AttachDocument(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	caseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AttachDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	document, err := h.service.AttachDocument(c.Request.Context(), actorID, caseID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, document)
}

// DetachDocument handles DELETE /api/v1/documents/:id
// @Summary Detach a document
// @Description Remove a document reference from its case (admin or legal)
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 204 "Document detached"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *CaseHandler) DetachDocument(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	documentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DetachDocument(c.Request.Context(), actorID, documentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDocuments handles GET /api/v1/cases/:id/documents
// @Summary List case documents
// @Description List a case's document references
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Documents with pagination metadata"
// @Failure 403 {object} ErrorResponse "Out of scope"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /cases/{id}/documents [get]
func (h *CaseHandler) ListDocuments(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	caseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	limit, offset := parsePagination(c)

	documents, total, err := h.service.ListDocuments(actorID, caseID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": documents,
		"meta":      ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}
