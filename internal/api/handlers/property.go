package handlers

import (
	"net/http"

	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles HTTP requests for properties and units
type PropertyHandler struct {
	service service.PropertyServiceInterface
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(service service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// CreateProperty handles POST /api/v1/properties
// @Summary Create a property
// @Description Create a property in an organization (admin or manager)
// @Tags properties
// @Accept json
// @Produce json
// @Param property body service.CreatePropertyRequest true "Property data"
// @Success 201 {object} service.PropertyResponse "Successfully created property"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	var req service.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	property, err := h.service.CreateProperty(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// GetProperty handles GET /api/v1/properties/:id
// @Summary Get property by ID
// @Description Get a property the actor's membership scope covers
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} service.PropertyResponse "Successfully retrieved property"
// @Failure 403 {object} ErrorResponse "Out of scope"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	propertyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	property, err := h.service.GetProperty(actorID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// ListProperties handles GET /api/v1/organizations/:id/properties
// @Summary List properties
// @Description List the organization's properties visible to the actor's scope
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Properties with pagination metadata"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /organizations/{id}/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
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

	properties, total, err := h.service.ListProperties(actorID, orgID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
		"meta":       ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// UpdateProperty handles PATCH /api/v1/properties/:id
// @Summary Update a property
// @Description Apply a partial update to a property (admin or manager)
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param property body service.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} service.PropertyResponse "Updated property"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	propertyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	property, err := h.service.UpdateProperty(c.Request.Context(), actorID, propertyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty handles DELETE /api/v1/properties/:id
// @Summary Delete a property
// @Description Delete a property (admin or manager). Properties that still own units cannot be deleted.
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 204 "Property deleted"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 409 {object} ErrorResponse "Property still has units"
// @Security BearerAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	propertyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), actorID, propertyID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateUnit handles POST /api/v1/units
// @Summary Create a unit
// @Description Create a unit under a property (admin or manager). New units start vacant.
// @Tags units
// @Accept json
// @Produce json
// @Param unit body service.CreateUnitRequest true "Unit data"
// @Success 201 {object} service.UnitResponse "Successfully created unit"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /units [post]
func (h *PropertyHandler) CreateUnit(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	var req service.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	unit, err := h.service.CreateUnit(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, unit)
}

// updateUnitStatusRequest is the body for unit status changes
type updateUnitStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateUnitStatus handles PATCH /api/v1/units/:id/status
// @Summary Update unit status
// @Description Change a unit's occupancy status (admin, manager, or maintenance)
// @Tags units
// @Accept json
// @Produce json
// @Param id path string true "Unit ID (UUID)"
// @Param status body updateUnitStatusRequest true "New status"
// @Success 200 {object} service.UnitResponse "Successfully updated unit"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Security BearerAuth
// @Router /units/{id}/status [patch]
func (h *PropertyHandler) UpdateUnitStatus(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	unitID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req updateUnitStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	unit, err := h.service.UpdateUnitStatus(c.Request.Context(), actorID, unitID, models.UnitStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, unit)
}

// DeleteUnit handles DELETE /api/v1/units/:id
// @Summary Delete a unit
// @Description Delete a unit (admin or manager). Occupied units cannot be deleted.
// @Tags units
// @Accept json
// @Produce json
// @Param id path string true "Unit ID (UUID)"
// @Success 204 "Unit deleted"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 409 {object} ErrorResponse "Unit is occupied"
// @Security BearerAuth
// @Router /units/{id} [delete]
func (h *PropertyHandler) DeleteUnit(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	unitID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUnit(c.Request.Context(), actorID, unitID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUnits handles GET /api/v1/properties/:id/units
// @Summary List units
// @Description List a property's units
// @Tags units
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Units with pagination metadata"
// @Failure 403 {object} ErrorResponse "Out of scope"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /properties/{id}/units [get]
func (h *PropertyHandler) ListUnits(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	propertyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	limit, offset := parsePagination(c)

	units, total, err := h.service.ListUnits(actorID, propertyID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"units": units,
		"meta":  ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}
