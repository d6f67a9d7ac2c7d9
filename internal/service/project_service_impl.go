package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

// normalizeProject trims the name, upper-cases the short ID and checks both.
func normalizeProject(p *domain.Project) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	p.ShortID = strings.ToUpper(strings.TrimSpace(p.ShortID))
	return p.ValidateShortID()
}

// ensureShortIDFree fails when another project already holds p's short ID.
func (s *projectService) ensureShortIDFree(ctx context.Context, p *domain.Project) error {
	holder, err := s.projects.GetByShortID(ctx, p.ShortID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return err
	case holder.ID != p.ID:
		return fmt.Errorf("short ID %q is already in use by %q", p.ShortID, holder.Name)
	default:
		return nil
	}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := normalizeProject(p); err != nil {
		return err
	}
	if err := s.ensureShortIDFree(ctx, p); err != nil {
		return err
	}

	p.ID = domain.Coalesce(p.ID, uuid.New().String())
	p.Status = domain.Coalesce(p.Status, domain.ProjectActive)
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Resolve accepts a short ID (any case) or a full UUID.
func (s *projectService) Resolve(ctx context.Context, ref string) (*domain.Project, error) {
	return resolveProject(ctx, s.projects, ref)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if !domain.ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	if err := normalizeProject(p); err != nil {
		return err
	}
	if err := s.ensureShortIDFree(ctx, p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

// Archive drops the project from portfolio status without losing its data.
func (s *projectService) Archive(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

// Delete removes an archived project and its planning data. force skips the
// archive requirement.
func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status != domain.ProjectArchived {
			return fmt.Errorf("project %s must be archived before deletion (use --force to override)", p.DisplayID())
		}
	}
	return s.projects.Delete(ctx, id)
}
