package handlers

import (
	"net/http"

	"property-portal-backend/internal/auth"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for tenants
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant handles POST /api/v1/tenants
// @Summary Create a tenant
// @Description Create a residential or commercial tenant record (admin or manager)
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} service.TenantResponse "Successfully created tenant"
// @Failure 400 {object} ErrorResponse "Invalid profile"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /api/v1/tenants/:id
// @Summary Get tenant by ID
// @Description Get a tenant record; tenant-role members can only read their own record
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.TenantResponse "Successfully retrieved tenant"
// @Failure 403 {object} ErrorResponse "Not permitted"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	tenantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	tenant, err := h.service.GetByID(actorID, tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ListTenants handles GET /api/v1/organizations/:id/tenants
// @Summary List tenants
// @Description List the organization's tenants
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Tenants with pagination metadata"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /organizations/{id}/tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
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

	tenants, total, err := h.service.ListByOrganization(actorID, orgID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tenants": tenants,
		"meta":    ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// UpdateTenant handles PATCH /api/v1/tenants/:id
// @Summary Update a tenant
// @Description Update a tenant's profile or linked user (admin or manager)
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param tenant body service.UpdateTenantRequest true "Fields to update"
// @Success 200 {object} service.TenantResponse "Successfully updated tenant"
// @Failure 400 {object} ErrorResponse "Invalid profile"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{id} [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	tenantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Update(c.Request.Context(), actorID, tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles DELETE /api/v1/tenants/:id
// @Summary Delete a tenant
// @Description Delete a tenant record (admin or manager). Tenants referenced by any lease cannot be deleted.
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 204 "Tenant deleted"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 409 {object} ErrorResponse "Tenant has leases"
// @Security BearerAuth
// @Router /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	tenantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, tenantID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
