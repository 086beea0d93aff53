package handlers

import (
	"net/http"

	"property-portal-backend/internal/auth"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditHandler handles HTTP requests for the audit trail
type AuditHandler struct {
	service service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{service: service}
}

// ListAuditEntries handles GET /api/v1/organizations/:id/audit
// @Summary List audit entries
// @Description List the organization's audit trail, newest first (admin or accounting)
// @Tags audit
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param entity_type query string false "Filter by entity type"
// @Param entity_id query string false "Filter by entity ID, requires entity_type"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Audit entries with pagination metadata"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Security BearerAuth
// @Router /organizations/{id}/audit [get]
func (h *AuditHandler) ListAuditEntries(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	orgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")

	if entityType != "" && entityID != "" {
		entries, err := h.service.ListByEntity(actorID, orgID, entityType, entityID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
		return
	}

	limit, offset := parsePagination(c)

	entries, total, err := h.service.ListByOrganization(actorID, orgID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"meta":    ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}
