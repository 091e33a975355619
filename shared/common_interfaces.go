// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package shared

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/dtos"
)

// Repository interfaces. Mutating methods take an optional transaction handle;
// passing nil uses the repository's default connection. Cross-entity writes
// that must be atomic run inside Transaction.

type UserRepository interface {
	Read(id uuid.UUID) (models.User, error)
	FindByEmail(email string) (models.User, error)
	FindByExternalID(externalID string) (models.User, error)
	Create(tx DB, user *models.User) error
	Save(tx DB, user *models.User) error
	Transaction(fn func(tx DB) error) error
}

type OrganizationRepository interface {
	Read(id uuid.UUID) (models.Organization, error)
	Create(tx DB, org *models.Organization) error
	Save(tx DB, org *models.Organization) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(fn func(tx DB) error) error
}

type OrganizationMemberRepository interface {
	Read(id uuid.UUID) (models.OrganizationMember, error)
	// FindByUserAndOrg returns gorm.ErrRecordNotFound when the pair has no row.
	FindByUserAndOrg(userID, orgID uuid.UUID) (models.OrganizationMember, error)
	FindInOrg(orgID, memberID uuid.UUID) (models.OrganizationMember, error)
	ListByOrg(orgID uuid.UUID, search string, page, limit int) ([]models.OrganizationMember, int64, error)
	ListByUser(userID uuid.UUID) ([]models.OrganizationMember, error)
	CountByOrg(orgID uuid.UUID) (int64, error)
	CountByOrgIDs(orgIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	// CountAdmins runs on tx when one is given so the last-admin check and
	// the mutation it guards share a transaction.
	CountAdmins(tx DB, orgID uuid.UUID) (int64, error)
	Create(tx DB, member *models.OrganizationMember) error
	Save(tx DB, member *models.OrganizationMember) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(fn func(tx DB) error) error
}

type OrganizationInvitationRepository interface {
	Read(id uuid.UUID) (models.OrganizationInvitation, error)
	// FindByEmailAndOrg runs on tx when one is given so an upsert can read
	// and write the row in the same transaction.
	FindByEmailAndOrg(tx DB, email string, orgID uuid.UUID) (models.OrganizationInvitation, error)
	FindInOrg(orgID, invitationID uuid.UUID) (models.OrganizationInvitation, error)
	// ListPendingByOrg returns live invitations only: not accepted, not expired.
	ListPendingByOrg(orgID uuid.UUID) ([]models.OrganizationInvitation, error)
	ListPendingByEmail(email string, orgID *uuid.UUID) ([]models.OrganizationInvitation, error)
	Create(tx DB, invitation *models.OrganizationInvitation) error
	Save(tx DB, invitation *models.OrganizationInvitation) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(fn func(tx DB) error) error
}

type ProjectRepository interface {
	Read(id uuid.UUID) (models.Project, error)
	FindInOrg(orgID, projectID uuid.UUID) (models.Project, error)
	FindByKey(orgID uuid.UUID, key string) (models.Project, error)
	ListByOrg(orgID uuid.UUID, search string, page, limit int, includeMembers bool) ([]models.Project, int64, error)
	Create(tx DB, project *models.Project) error
	Save(tx DB, project *models.Project) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(fn func(tx DB) error) error
}

type ProjectMemberRepository interface {
	Read(id uuid.UUID) (models.ProjectMember, error)
	FindByUserAndProject(userID, projectID uuid.UUID) (models.ProjectMember, error)
	FindInProject(projectID, memberID uuid.UUID) (models.ProjectMember, error)
	ListByProject(projectID uuid.UUID) ([]models.ProjectMember, error)
	CountByProject(projectID uuid.UUID) (int64, error)
	CountByProjectIDs(projectIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Create(tx DB, member *models.ProjectMember) error
	Save(tx DB, member *models.ProjectMember) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(fn func(tx DB) error) error
}

type ProjectInvitationRepository interface {
	Read(id uuid.UUID) (models.ProjectInvitation, error)
	FindByUserAndProject(tx DB, userID, projectID uuid.UUID) (models.ProjectInvitation, error)
	FindInProject(projectID, invitationID uuid.UUID) (models.ProjectInvitation, error)
	// ListByProject filters by status: "pending", "accepted", "expired" or ""
	// for all rows.
	ListByProject(projectID uuid.UUID, status string) ([]models.ProjectInvitation, error)
	ListPendingByUser(userID uuid.UUID, orgID *uuid.UUID) ([]models.ProjectInvitation, error)
	Create(tx DB, invitation *models.ProjectInvitation) error
	Save(tx DB, invitation *models.ProjectInvitation) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(fn func(tx DB) error) error
}

type OTPRepository interface {
	FindByEmailAndCode(email, code string) (models.OTP, error)
	DeleteByEmail(tx DB, email string) error
	Create(tx DB, otp *models.OTP) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(fn func(tx DB) error) error
}

// Service interfaces consumed by the controllers.

type OrgService interface {
	CreateOrganization(userID uuid.UUID, name string) (models.Organization, error)
	ListOrganizations(userID uuid.UUID) ([]dtos.OrgSummaryDTO, error)
	ChangeMemberRole(orgID, memberID uuid.UUID, role models.OrganizationRole) (models.OrganizationMember, error)
	RemoveMember(caller models.OrganizationMember, memberID uuid.UUID) error
}

type ProjectService interface {
	CreateProject(orgID, creatorID uuid.UUID, req dtos.ProjectCreateRequest) (models.Project, error)
	UpdateProject(project models.Project, req dtos.ProjectPatchRequest) (models.Project, error)
	DeleteProject(projectID uuid.UUID) error
	ListProjects(orgID uuid.UUID, query dtos.ProjectListQuery) (dtos.ProjectListDTO, error)
}

// OrgInvitationService is the organization half of the invitation engine.
type OrgInvitationService interface {
	InviteMembers(org models.Organization, emails []string, role models.OrganizationRole) dtos.InvitationBatchResult
	Accept(user models.User, invitationID uuid.UUID) (models.OrganizationInvitation, error)
	Reject(user models.User, invitationID uuid.UUID) error
	Cancel(orgID, invitationID uuid.UUID) error
}

// ProjectInvitationService is the project half. The two scopes share shape
// but deliberately not code: organization invitations are keyed by email,
// project invitations by an existing user id.
type ProjectInvitationService interface {
	Invite(project models.Project, inviteeID uuid.UUID, role models.ProjectRole) (models.ProjectInvitation, error)
	Accept(user models.User, invitationID uuid.UUID) (models.ProjectInvitation, error)
	Reject(user models.User, invitationID uuid.UUID) error
	Cancel(projectID, invitationID uuid.UUID) error
}

type UserService interface {
	// SyncSession creates the local user row on first sign-in, refreshes
	// identity-provider fields on later sign-ins and provisions a default
	// organization when the user belongs to none.
	SyncSession(session AuthSession) (models.User, error)
}

type OTPService interface {
	GenerateAndSend(email string) error
	Verify(email, code string) error
}

type Mailer interface {
	Send(to, subject, html string) error
}
