package models

// OrganizationStatus defines the lifecycle state of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive   OrganizationStatus = "active"
	OrganizationStatusArchived OrganizationStatus = "archived"
)

// MembershipRole represents the role of a member within an organization
type MembershipRole string

const (
	MembershipRoleAdmin       MembershipRole = "admin"
	MembershipRoleManager     MembershipRole = "manager"
	MembershipRoleAccounting  MembershipRole = "accounting"
	MembershipRoleMaintenance MembershipRole = "maintenance"
	MembershipRoleLegal       MembershipRole = "legal"
	MembershipRoleTenant      MembershipRole = "tenant"
	MembershipRoleReadOnly    MembershipRole = "read_only"
)

// MembershipStatus represents the lifecycle status of a membership.
// Removal deletes the record, so there is no "removed" status.
type MembershipStatus string

const (
	MembershipStatusInvited  MembershipStatus = "invited"
	MembershipStatusActive   MembershipStatus = "active"
	MembershipStatusDisabled MembershipStatus = "disabled"
)

// UnitStatus represents the occupancy state of a unit
type UnitStatus string

const (
	UnitStatusVacant      UnitStatus = "vacant"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
	UnitStatusOffline     UnitStatus = "offline"
)

// LeaseStatus represents the lifecycle state of a lease
type LeaseStatus string

const (
	LeaseStatusDraft      LeaseStatus = "draft"
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusEnded      LeaseStatus = "ended"
	LeaseStatusTerminated LeaseStatus = "terminated"
)

// CaseStatus represents the lifecycle state of a legal case
type CaseStatus string

const (
	CaseStatusOpen    CaseStatus = "open"
	CaseStatusPending CaseStatus = "pending"
	CaseStatusClosed  CaseStatus = "closed"
)

// AuditAction identifies the kind of mutation recorded in the audit log
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionDelete  AuditAction = "delete"
	AuditActionApprove AuditAction = "approve"
	AuditActionReject  AuditAction = "reject"
	AuditActionInvite  AuditAction = "invite"
	AuditActionAccept  AuditAction = "accept"
	AuditActionDecline AuditAction = "decline"
	AuditActionArchive AuditAction = "archive"
	AuditActionRestore AuditAction = "restore"
)

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleAdmin, MembershipRoleManager, MembershipRoleAccounting,
		MembershipRoleMaintenance, MembershipRoleLegal, MembershipRoleTenant,
		MembershipRoleReadOnly:
		return true
	}
	return false
}

// IsValid checks if the MembershipStatus is valid
func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipStatusInvited, MembershipStatusActive, MembershipStatusDisabled:
		return true
	}
	return false
}

// IsValid checks if the UnitStatus is valid
func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitStatusVacant, UnitStatusOccupied, UnitStatusMaintenance, UnitStatusOffline:
		return true
	}
	return false
}

// IsValid checks if the LeaseStatus is valid
func (s LeaseStatus) IsValid() bool {
	switch s {
	case LeaseStatusDraft, LeaseStatusActive, LeaseStatusEnded, LeaseStatusTerminated:
		return true
	}
	return false
}

// IsValid checks if the CaseStatus is valid
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusPending, CaseStatusClosed:
		return true
	}
	return false
}

// IsTerminal reports whether the lease status releases tenant back-references
func (s LeaseStatus) IsTerminal() bool {
	return s == LeaseStatusEnded || s == LeaseStatusTerminated
}
