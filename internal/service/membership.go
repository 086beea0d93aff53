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

// DirectoryLookup resolves profile details for an email address from an
// external user directory. Optional: a nil lookup is skipped.
type DirectoryLookup interface {
	LookupByEmail(email string) (*DirectoryProfile, error)
}

// DirectoryProfile is the subset of directory attributes the invite flow uses
type DirectoryProfile struct {
	DisplayName string
	PhoneNumber string
}

// MembershipService manages the lifecycle of organization memberships:
// invited, active, disabled, and removal. Every mutation checks its
// preconditions before any write and commits together with its audit entry
// in one batch.
type MembershipService struct {
	memberships repository.MembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	orgs        repository.OrganizationRepositoryInterface
	authorizer  *Authorizer
	audit       *AuditRecorder
	committer   repository.BatchCommitter
	directory   DirectoryLookup
	validator   *validator.Validate
}

// NewMembershipService creates a new membership service. directory may be
// nil if no external user directory is configured.
func NewMembershipService(
	memberships repository.MembershipRepositoryInterface,
	users repository.UserRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	authorizer *Authorizer,
	audit *AuditRecorder,
	committer repository.BatchCommitter,
	directory DirectoryLookup,
	validator *validator.Validate,
) *MembershipService {
	return &MembershipService{
		memberships: memberships,
		users:       users,
		orgs:        orgs,
		authorizer:  authorizer,
		audit:       audit,
		committer:   committer,
		directory:   directory,
		validator:   validator,
	}
}

// InviteMemberRequest represents the request to invite a user into an organization
type InviteMemberRequest struct {
	Email          string      `json:"email" validate:"required,email,max=255"`
	DisplayName    string      `json:"display_name" validate:"omitempty,max=200"`
	Role           string      `json:"role" validate:"required"`
	PropertyScopes []uuid.UUID `json:"property_scopes,omitempty"`
	CaseScopes     []uuid.UUID `json:"case_scopes,omitempty"`
}

// UpdateMembershipRequest represents an admin update to a membership.
// Nil fields are left unchanged.
type UpdateMembershipRequest struct {
	Role           *string      `json:"role,omitempty"`
	Status         *string      `json:"status,omitempty"`
	PropertyScopes *[]uuid.UUID `json:"property_scopes,omitempty"`
	CaseScopes     *[]uuid.UUID `json:"case_scopes,omitempty"`
}

// MembershipResponse represents the response data for a membership
type MembershipResponse struct {
	OrganizationID uuid.UUID   `json:"organization_id"`
	UserID         uuid.UUID   `json:"user_id"`
	Email          string      `json:"email,omitempty"`
	DisplayName    string      `json:"display_name,omitempty"`
	Role           string      `json:"role"`
	Status         string      `json:"status"`
	PropertyScopes []uuid.UUID `json:"property_scopes"`
	CaseScopes     []uuid.UUID `json:"case_scopes"`
	InvitedBy      uuid.UUID   `json:"invited_by"`
	InvitedAt      string      `json:"invited_at"`
	JoinedAt       *string     `json:"joined_at,omitempty"`
}

// membershipSnapshot is the partial state recorded in audit entries
type membershipSnapshot struct {
	Role           models.MembershipRole   `json:"role"`
	Status         models.MembershipStatus `json:"status"`
	PropertyScopes models.UUIDSet          `json:"property_scopes,omitempty"`
	CaseScopes     models.UUIDSet          `json:"case_scopes,omitempty"`
}

func snapshotOf(m *models.Membership) membershipSnapshot {
	return membershipSnapshot{
		Role:           m.Role,
		Status:         m.Status,
		PropertyScopes: m.PropertyScopes,
		CaseScopes:     m.CaseScopes,
	}
}

// Invite invites a user into an organization by email. The actor must be an
// active admin. If the email has no directory user yet, one is created in
// the same batch as the membership.
func (s *MembershipService) Invite(ctx context.Context, actorID, orgID uuid.UUID, req *InviteMemberRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role := models.MembershipRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	if _, err := s.authorizer.Authorize(actorID, orgID, adminOnly); err != nil {
		return nil, err
	}

	batch := repository.NewBatch()

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve user by email: %w", err)
		}
		user = s.newUserForInvite(req)
		batch.Create(user)
	} else {
		existing, err := s.memberships.Get(orgID, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing membership: %w", err)
		}
		if existing != nil {
			// A disabled member is reactivated, not re-invited.
			if existing.Status == models.MembershipStatusDisabled {
				return nil, apperrors.ErrMemberDisabled
			}
			return nil, apperrors.ErrAlreadyMember
		}
	}

	now := time.Now()
	membership := &models.Membership{
		OrganizationID: orgID,
		UserID:         user.ID,
		Role:           role,
		Status:         models.MembershipStatusInvited,
		PropertyScopes: models.UUIDSet(req.PropertyScopes),
		CaseScopes:     models.UUIDSet(req.CaseScopes),
		InvitedBy:      actorID,
		InvitedAt:      now,
	}
	batch.Create(membership)

	err = s.audit.Record(batch, orgID, actorID, models.AuditActionInvite,
		"membership", user.ID.String(), entityPath(orgID, "memberships", user.ID.String()),
		nil, snapshotOf(membership))
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit invite: %w", err)
	}

	return s.toResponse(membership, user), nil
}

// Accept transitions the actor's own invitation to active. JoinedAt is set
// only on the first activation.
func (s *MembershipService) Accept(ctx context.Context, actorID, orgID uuid.UUID) (*MembershipResponse, error) {
	membership, err := s.getInvitation(orgID, actorID)
	if err != nil {
		return nil, err
	}

	before := snapshotOf(membership)
	membership.Status = models.MembershipStatusActive
	if membership.JoinedAt == nil {
		now := time.Now()
		membership.JoinedAt = &now
	}

	batch := repository.NewBatch()
	batch.Save(membership)
	err = s.audit.Record(batch, orgID, actorID, models.AuditActionAccept,
		"membership", actorID.String(), entityPath(orgID, "memberships", actorID.String()),
		before, snapshotOf(membership))
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit accept: %w", err)
	}

	return s.toResponse(membership, nil), nil
}

// Decline removes the actor's own pending invitation entirely. A declined
// invite has no further meaning, so no "declined" status is stored.
func (s *MembershipService) Decline(ctx context.Context, actorID, orgID uuid.UUID) error {
	membership, err := s.getInvitation(orgID, actorID)
	if err != nil {
		return err
	}

	batch := repository.NewBatch()
	batch.Delete(&models.Membership{OrganizationID: orgID, UserID: actorID})
	err = s.audit.Record(batch, orgID, actorID, models.AuditActionDecline,
		"membership", actorID.String(), entityPath(orgID, "memberships", actorID.String()),
		snapshotOf(membership), nil)
	if err != nil {
		return err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return fmt.Errorf("failed to commit decline: %w", err)
	}
	return nil
}

// Update applies an admin change to a membership's role, scopes, or status.
// Demoting or disabling a currently-active admin goes through the last-admin
// guard first; all preconditions are checked before any write.
func (s *MembershipService) Update(ctx context.Context, actorID, orgID, targetUserID uuid.UUID, req *UpdateMembershipRequest) (*MembershipResponse, error) {
	if _, err := s.authorizer.Authorize(actorID, orgID, adminOnly); err != nil {
		return nil, err
	}

	membership, err := s.memberships.Get(orgID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	before := snapshotOf(membership)

	var newRole *models.MembershipRole
	if req.Role != nil {
		role := models.MembershipRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "unknown role")
		}
		newRole = &role
	}
	var newStatus *models.MembershipStatus
	if req.Status != nil {
		status := models.MembershipStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown status")
		}
		newStatus = &status
	}

	wasActiveAdmin := membership.Role == models.MembershipRoleAdmin && membership.IsActive()
	demotes := newRole != nil && *newRole != models.MembershipRoleAdmin
	disables := newStatus != nil && *newStatus == models.MembershipStatusDisabled
	if wasActiveAdmin && (demotes || disables) {
		if err := s.assertNotLastAdmin(orgID, targetUserID); err != nil {
			return nil, err
		}
	}

	if newRole != nil {
		membership.Role = *newRole
	}
	if newStatus != nil {
		// invited -> active through an admin update also counts as joining
		if membership.Status == models.MembershipStatusInvited && *newStatus == models.MembershipStatusActive && membership.JoinedAt == nil {
			now := time.Now()
			membership.JoinedAt = &now
		}
		membership.Status = *newStatus
	}
	if req.PropertyScopes != nil {
		membership.PropertyScopes = models.UUIDSet(*req.PropertyScopes)
	}
	if req.CaseScopes != nil {
		membership.CaseScopes = models.UUIDSet(*req.CaseScopes)
	}

	batch := repository.NewBatch()
	batch.Save(membership)
	err = s.audit.Record(batch, orgID, actorID, models.AuditActionUpdate,
		"membership", targetUserID.String(), entityPath(orgID, "memberships", targetUserID.String()),
		before, snapshotOf(membership))
	if err != nil {
		return nil, err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to commit membership update: %w", err)
	}

	return s.toResponse(membership, nil), nil
}

// Remove hard-deletes a membership. Removing a currently-active admin goes
// through the last-admin guard first.
func (s *MembershipService) Remove(ctx context.Context, actorID, orgID, targetUserID uuid.UUID) error {
	if _, err := s.authorizer.Authorize(actorID, orgID, adminOnly); err != nil {
		return err
	}

	membership, err := s.memberships.Get(orgID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to load membership: %w", err)
	}

	if membership.Role == models.MembershipRoleAdmin && membership.IsActive() {
		if err := s.assertNotLastAdmin(orgID, targetUserID); err != nil {
			return err
		}
	}

	batch := repository.NewBatch()
	batch.Delete(&models.Membership{OrganizationID: orgID, UserID: targetUserID})
	err = s.audit.Record(batch, orgID, actorID, models.AuditActionDelete,
		"membership", targetUserID.String(), entityPath(orgID, "memberships", targetUserID.String()),
		snapshotOf(membership), nil)
	if err != nil {
		return err
	}

	if err := s.committer.Commit(ctx, batch); err != nil {
		return fmt.Errorf("failed to commit membership removal: %w", err)
	}
	return nil
}

// List retrieves the memberships of an organization. Any active member may list.
func (s *MembershipService) List(actorID, orgID uuid.UUID, limit, offset int) ([]MembershipResponse, int64, error) {
	if _, err := s.authorizer.Authorize(actorID, orgID, AllRoles()); err != nil {
		return nil, 0, err
	}

	memberships, total, err := s.memberships.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]MembershipResponse, len(memberships))
	for i := range memberships {
		responses[i] = *s.toResponse(&memberships[i], &memberships[i].User)
	}
	return responses, total, nil
}

// assertNotLastAdmin fails with LastAdmin when the organization would be
// left without an active admin once the excluded user is demoted, disabled,
// or removed.
//
// This is a read-then-decide check, not a transactional constraint: two
// concurrent removals of the last two admins can both pass it. The check is
// kept behind this single seam so the store's conditional-write primitive
// can replace it without touching callers.
func (s *MembershipService) assertNotLastAdmin(orgID, excludedUserID uuid.UUID) error {
	count, err := s.memberships.CountActiveAdmins(orgID, excludedUserID)
	if err != nil {
		return fmt.Errorf("failed to count active admins: %w", err)
	}
	if count == 0 {
		return apperrors.ErrLastAdmin
	}
	return nil
}

// getInvitation loads the actor's membership and checks it is still a
// pending invitation. Already-processed invitations surface InvalidStatus so
// callers can treat a duplicate accept as already satisfied.
func (s *MembershipService) getInvitation(orgID, userID uuid.UUID) (*models.Membership, error) {
	membership, err := s.memberships.Get(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	if membership.Status != models.MembershipStatusInvited {
		return nil, apperrors.ErrInvalidStatus
	}
	return membership, nil
}

// newUserForInvite builds the directory user created alongside a first-time
// invite, enriched from the external directory when one is configured
func (s *MembershipService) newUserForInvite(req *InviteMemberRequest) *models.User {
	user := &models.User{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Email:       req.Email,
		DisplayName: req.DisplayName,
	}
	if s.directory != nil {
		if profile, err := s.directory.LookupByEmail(req.Email); err == nil && profile != nil {
			if user.DisplayName == "" {
				user.DisplayName = profile.DisplayName
			}
			user.PhoneNumber = profile.PhoneNumber
		}
	}
	if user.DisplayName == "" {
		user.DisplayName = req.Email
	}
	return user
}

// toResponse converts a membership model to a response. user may be nil.
func (s *MembershipService) toResponse(m *models.Membership, user *models.User) *MembershipResponse {
	resp := &MembershipResponse{
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		Role:           string(m.Role),
		Status:         string(m.Status),
		PropertyScopes: m.PropertyScopes,
		CaseScopes:     m.CaseScopes,
		InvitedBy:      m.InvitedBy,
		InvitedAt:      m.InvitedAt.Format(time.RFC3339),
	}
	if m.JoinedAt != nil {
		joined := m.JoinedAt.Format(time.RFC3339)
		resp.JoinedAt = &joined
	}
	if user != nil && user.ID == m.UserID {
		resp.Email = user.Email
		resp.DisplayName = user.DisplayName
	}
	return resp
}
