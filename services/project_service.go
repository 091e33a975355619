// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/database/repositories"
	"github.com/worknest-dev/worknest/dtos"
	"github.com/worknest-dev/worknest/shared"
	"github.com/worknest-dev/worknest/transformer"
	"gorm.io/gorm"
)

var projectKeyRegexp = regexp.MustCompile(`^[A-Za-z0-9]{2,10}$`)

const (
	defaultProjectPageSize = 20
	maxProjectPageSize     = 100
)

type projectService struct {
	projectRepository shared.ProjectRepository
	memberRepository  shared.ProjectMemberRepository
}

func NewProjectService(projectRepository shared.ProjectRepository, memberRepository shared.ProjectMemberRepository) *projectService {
	return &projectService{
		projectRepository: projectRepository,
		memberRepository:  memberRepository,
	}
}

// CreateProject creates the project and makes the creator its lead in one
// transaction. The key is uppercased before the uniqueness check so "mob"
// and "MOB" collide.
func (s *projectService) CreateProject(orgID, creatorID uuid.UUID, req dtos.ProjectCreateRequest) (models.Project, error) {
	var project models.Project

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return project, echo.NewHTTPError(http.StatusBadRequest, "Project name is required")
	}

	key := strings.TrimSpace(req.Key)
	if !projectKeyRegexp.MatchString(key) {
		return project, echo.NewHTTPError(http.StatusBadRequest, "Key must be 2-10 alphanumeric characters")
	}
	key = strings.ToUpper(key)

	if _, err := s.projectRepository.FindByKey(orgID, key); err == nil {
		return project, echo.NewHTTPError(http.StatusBadRequest, "A project with this key already exists in the organization")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return project, err
	}

	project = models.Project{
		OrganizationID: orgID,
		Name:           name,
		Key:            key,
		CreatedByID:    creatorID,
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description != "" {
			project.Description = &description
		}
	}
	if req.Color != nil && *req.Color != "" {
		project.Color = *req.Color
	}

	err := s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Create(tx, &project); err != nil {
			return err
		}
		member := models.ProjectMember{
			ProjectID: project.ID,
			UserID:    creatorID,
			Role:      models.RoleProjectLead,
		}
		return s.memberRepository.Create(tx, &member)
	})
	if err != nil {
		// two concurrent creates can both pass the read check; the unique
		// index catches the loser
		if repositories.IsUniqueConstraintError(err) {
			return project, echo.NewHTTPError(http.StatusBadRequest, "A project with this key already exists in the organization").WithInternal(err)
		}
		return project, err
	}

	return s.projectRepository.FindInOrg(orgID, project.ID)
}

// UpdateProject applies a partial update. The key is immutable.
func (s *projectService) UpdateProject(project models.Project, req dtos.ProjectPatchRequest) (models.Project, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return project, echo.NewHTTPError(http.StatusBadRequest, "Project name is required")
		}
		project.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			project.Description = nil
		} else {
			project.Description = &description
		}
	}
	if req.Color != nil && *req.Color != "" {
		project.Color = *req.Color
	}

	if err := s.projectRepository.Save(nil, &project); err != nil {
		return project, err
	}
	return project, nil
}

func (s *projectService) DeleteProject(projectID uuid.UUID) error {
	// members and invitations go with the project via FK cascade
	return s.projectRepository.Delete(nil, projectID)
}

func (s *projectService) ListProjects(orgID uuid.UUID, query dtos.ProjectListQuery) (dtos.ProjectListDTO, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultProjectPageSize
	}
	if limit > maxProjectPageSize {
		limit = maxProjectPageSize
	}

	projects, total, err := s.projectRepository.ListByOrg(orgID, query.Search, page, limit, query.IncludeMembers)
	if err != nil {
		return dtos.ProjectListDTO{}, err
	}

	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}
	counts, err := s.memberRepository.CountByProjectIDs(projectIDs)
	if err != nil {
		return dtos.ProjectListDTO{}, err
	}

	result := dtos.ProjectListDTO{
		Projects: make([]dtos.ProjectDTO, 0, len(projects)),
		Pagination: dtos.PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}
	for _, project := range projects {
		result.Projects = append(result.Projects, transformer.ProjectToDTO(project, counts[project.ID], query.IncludeMembers))
	}
	return result, nil
}
