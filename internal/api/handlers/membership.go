package handlers

import (
	"net/http"

	"property-portal-backend/internal/auth"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles HTTP requests for organization memberships
type MembershipHandler struct {
	service service.MembershipServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(service service.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// InviteMember handles POST /api/v1/organizations/:id/members
// @Summary Invite a member
// @Description Invite a user into the organization by email (admin only)
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invite body service.InviteMemberRequest true "Invite data"
// @Success 201 {object} service.MembershipResponse "Successfully created invite"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /organizations/{id}/members [post]
func (h *MembershipHandler) InviteMember(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	orgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	membership, err := h.service.Invite(c.Request.Context(), actorID, orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// AcceptInvite handles POST /api/v1/organizations/:id/members/accept
// @Summary Accept an invite
// @Description Accept the actor's own pending invite to the organization
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.MembershipResponse "Invite accepted"
// @Failure 404 {object} ErrorResponse "No pending invite"
// @Failure 409 {object} ErrorResponse "Membership not in invited state"
// @Security BearerAuth
// @Router /organizations/{id}/members/accept [post]
func (h *MembershipHandler) AcceptInvite(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	orgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	membership, err := h.service.Accept(c.Request.Context(), actorID, orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// DeclineInvite handles POST /api/v1/organizations/:id/members/decline
// @Summary Decline an invite
// @Description Decline the actor's own pending invite to the organization
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Invite declined"
// @Failure 404 {object} ErrorResponse "No pending invite"
// @Failure 409 {object} ErrorResponse "Membership not in invited state"
// @Security BearerAuth
// @Router /organizations/{id}/members/decline [post]
func (h *MembershipHandler) DeclineInvite(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	orgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Decline(c.Request.Context(), actorID, orgID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateMember handles PATCH /api/v1/organizations/:id/members/:userId
// @Summary Update a membership
// @Description Change a member's role, status, or scopes (admin only). Demoting or disabling the last active admin is rejected.
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param userId path string true "Target user ID (UUID)"
// @Param update body service.UpdateMembershipRequest true "Fields to update"
// @Success 200 {object} service.MembershipResponse "Successfully updated membership"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Failure 409 {object} ErrorResponse "Would remove the last active admin"
// @Security BearerAuth
// @Router /organizations/{id}/members/{userId} [patch]
func (h *MembershipHandler) UpdateMember(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	orgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	targetUserID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req service.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	membership, err := h.service.Update(c.Request.Context(), actorID, orgID, targetUserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// RemoveMember handles DELETE /api/v1/organizations/:id/members/:userId
// @Summary Remove a member
// @Description Remove a membership from the organization (admin only). Removing the last active admin is rejected.
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param userId path string true "Target user ID (UUID)"
// @Success 204 "Membership removed"
// @Failure 403 {object} ErrorResponse "Role not permitted"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Failure 409 {object} ErrorResponse "Would remove the last active admin"
// @Security BearerAuth
// @Router /organizations/{id}/members/{userId} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	orgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	targetUserID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), actorID, orgID, targetUserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers handles GET /api/v1/organizations/:id/members
// @Summary List members
// @Description List the organization's memberships
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Memberships with pagination metadata"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /organizations/{id}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
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

	memberships, total, err := h.service.List(actorID, orgID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": memberships,
		"meta":    ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}
