package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/scurve/internal/contract"
	"github.com/alexanderramin/scurve/internal/domain"
)

// resolveProject resolves a project reference which can be a short ID
// (case-insensitive), a full UUID, or an unambiguous UUID prefix.
func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project ID is required")
	}

	p, err := app.Projects.Resolve(ctx, input)
	if err == nil {
		return p, nil
	}
	var curveErr *contract.CurveError
	if !errors.As(err, &curveErr) || curveErr.Code != contract.CurveErrProjectNotFound {
		return nil, err
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return nil, err
	}

	var matches []*domain.Project
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
