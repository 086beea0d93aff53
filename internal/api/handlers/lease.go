package handlers

import (
	"net/http"

	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaseHandler handles HTTP requests for leases
type LeaseHandler struct {
	service service.LeaseServiceInterface
}

// NewLeaseHandler creates a new lease handler
func NewLeaseHandler(service service.LeaseServiceInterface) *LeaseHandler {
	return &LeaseHandler{service: service}
}

// CreateLease handles POST /api/v1/leases
// @Summary Create a lease
// @Description Create a lease binding a unit to one or more tenants (admin or manager). Tenant back-references are updated in the same transaction.
// @Tags leases
// @Accept json
// @Produce json
// @Param lease body service.CreateLeaseRequest true "Lease data"
// @Success 201 {object} service.LeaseResponse "Successfully created lease"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Unit or tenant not found"
// @Security BearerAuth
// @Router /leases [post]
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	var req service.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	lease, err := h.service.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lease)
}

// GetLease handles GET /api/v1/leases/:id
// @Summary Get lease by ID
// @Description Get a lease; tenant-role members can only read leases naming their own tenant record
// @Tags leases
// @Accept json
// @Produce json
// @Param id path string true "Lease ID (UUID)"
// @Success 200 {object} service.LeaseResponse "Successfully retrieved lease"
// @Failure 403 {object} ErrorResponse "Not permitted"
// @Failure 404 {object} ErrorResponse "Lease not found"
// @Security BearerAuth
// @Router /leases/{id} [get]
func (h *LeaseHandler) GetLease(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	leaseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	lease, err := h.service.GetByID(actorID, leaseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lease)
}

// ListLeases handles GET /api/v1/organizations/:id/leases
// @Summary List leases
// @Description List the organization's leases
// @Tags leases
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Leases with pagination metadata"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /organizations/{id}/leases [get]
func (h *LeaseHandler) ListLeases(c *gin.Context) {
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

	leases, total, err := h.service.ListByOrganization(actorID, orgID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leases": leases,
		"meta":   ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// updateLeaseStatusRequest is the body for lease status transitions
type updateLeaseStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateLeaseStatus handles PATCH /api/v1/leases/:id/status
// @Summary Transition lease status
// @Description Move a lease through its lifecycle (draft, active, ended, terminated). Ending a lease removes the tenant back-references in the same transaction.
// @Tags leases
// @Accept json
// @Produce json
// @Param id path string true "Lease ID (UUID)"
// @Param status body updateLeaseStatusRequest true "New status"
// @Success 200 {object} service.LeaseResponse "Successfully transitioned lease"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Lease not found"
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /leases/{id}/status [patch]
func (h *LeaseHandler) UpdateLeaseStatus(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	leaseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req updateLeaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	lease, err := h.service.UpdateStatus(c.Request.Context(), actorID, leaseID, models.LeaseStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lease)
}

// DeleteLease handles DELETE /api/v1/leases/:id
// @Summary Delete a lease
// @Description Delete a draft lease (admin or manager). Active or ended leases cannot be deleted.
// @Tags leases
// @Accept json
// @Produce json
// @Param id path string true "Lease ID (UUID)"
// @Success 204 "Lease deleted"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Lease not found"
// @Failure 409 {object} ErrorResponse "Lease is not a draft"
// @Security BearerAuth
// @Router /leases/{id} [delete]
func (h *LeaseHandler) DeleteLease(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	leaseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, leaseID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
