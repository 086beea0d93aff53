package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database reads for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Get retrieves the membership for an (organization, user) pair
func (r *MembershipRepository) Get(orgID, userID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetWithUser retrieves a membership with its user preloaded
func (r *MembershipRepository) GetWithUser(orgID, userID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Preload("User").First(&membership, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListByOrganization retrieves all memberships for an organization with pagination
func (r *MembershipRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Membership, int64, error) {
	var memberships []models.Membership
	var total int64

	query := r.db.Model(&models.Membership{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("invited_at").Find(&memberships).Error
	if err != nil {
		return nil, 0, err
	}

	return memberships, total, nil
}

// ListByUser retrieves all memberships held by a user across organizations
func (r *MembershipRepository) ListByUser(userID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("user_id = ?", userID).Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// CountActiveAdmins counts active admin memberships in an organization,
// excluding the given user. This is the read half of the last-admin guard;
// the decision happens in the service layer.
func (r *MembershipRepository) CountActiveAdmins(orgID uuid.UUID, excludeUserID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("organization_id = ? AND role = ? AND status = ? AND user_id <> ?",
			orgID, models.MembershipRoleAdmin, models.MembershipStatusActive, excludeUserID).
		Count(&count).Error
	return count, err
}
