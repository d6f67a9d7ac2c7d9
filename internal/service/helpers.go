package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/scurve/internal/app"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/repository"
)

// resolveProject finds a project by short ID first, then by ID. A miss is
// reported as a PROJECT_NOT_FOUND CurveError.
func resolveProject(ctx context.Context, projects repository.ProjectRepo, ref string) (*domain.Project, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &app.CurveError{Code: app.CurveErrInvalidInput, Message: "project reference is required"}
	}

	p, err := projects.GetByShortID(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading project %q: %w", ref, err)
	}

	p, err = projects.GetByID(ctx, ref)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.CurveError{Code: app.CurveErrProjectNotFound, Message: fmt.Sprintf("no project matches %q", ref)}
	}
	return nil, fmt.Errorf("loading project %q: %w", ref, err)
}

// filterProjectsByScope keeps projects whose ID or short ID is in scope.
// If scope is empty, all projects are returned unchanged.
func filterProjectsByScope(projects []*domain.Project, scope []string) []*domain.Project {
	if len(scope) == 0 {
		return projects
	}
	scopeSet := make(map[string]bool, len(scope))
	for _, ref := range scope {
		scopeSet[strings.ToUpper(strings.TrimSpace(ref))] = true
	}
	var filtered []*domain.Project
	for _, p := range projects {
		if scopeSet[strings.ToUpper(p.ID)] || (p.ShortID != "" && scopeSet[strings.ToUpper(p.ShortID)]) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
