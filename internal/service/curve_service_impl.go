package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scurve/internal/app"
	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/db"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/progress"
	"github.com/alexanderramin/scurve/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type curveService struct {
	projects     repository.ProjectRepo
	tasks        repository.TaskRepo
	snapshots    repository.SnapshotRepo
	uow          db.UnitOfWork
	catalog      catalog.Catalog
	redistribute bool
	concurrency  int
	logger       *zap.Logger
	observer     UseCaseObserver
	cache        *curveCache
	now          func() time.Time
}

// CurveServiceOption configures a CurveService.
type CurveServiceOption func(*curveService)

// WithRedistribution sets the default redistribution policy. Requests may
// override it.
func WithRedistribution(enabled bool) CurveServiceOption {
	return func(s *curveService) { s.redistribute = enabled }
}

// WithConcurrency sets the default bound on parallel curve computations.
func WithConcurrency(n int) CurveServiceOption {
	return func(s *curveService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithLogger(logger *zap.Logger) CurveServiceOption {
	return func(s *curveService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithObserver(obs UseCaseObserver) CurveServiceOption {
	return func(s *curveService) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// WithUnitOfWork loads a project's tasks and snapshots from one read
// snapshot, so a concurrent snapshot import cannot be half visible.
func WithUnitOfWork(uow db.UnitOfWork) CurveServiceOption {
	return func(s *curveService) { s.uow = uow }
}

// WithClock replaces time.Now as the reference for the current week.
func WithClock(now func() time.Time) CurveServiceOption {
	return func(s *curveService) { s.now = now }
}

// WithCacheSize bounds the number of memoized charts.
func WithCacheSize(n int) CurveServiceOption {
	return func(s *curveService) { s.cache = newCurveCache(n) }
}

func NewCurveService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	snapshots repository.SnapshotRepo,
	cat catalog.Catalog,
	opts ...CurveServiceOption,
) CurveService {
	s := &curveService{
		projects:     projects,
		tasks:        tasks,
		snapshots:    snapshots,
		catalog:      cat,
		redistribute: true,
		concurrency:  4,
		logger:       zap.NewNop(),
		observer:     NoopUseCaseObserver{},
		cache:        newCurveCache(defaultCurveCacheSize),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *curveService) Catalog() catalog.Catalog {
	return s.catalog
}

func (s *curveService) GetCurve(ctx context.Context, req app.CurveRequest) (resp *app.CurveResponse, err error) {
	fields := map[string]any{"project": req.ProjectRef}
	defer observe(ctx, s.observer, "curve", time.Now(), fields, &err)

	project, err := resolveProject(ctx, s.projects, req.ProjectRef)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}
	redistribute := s.redistribute
	if req.Redistribute != nil {
		redistribute = *req.Redistribute
	}

	chart, cached, err := s.computeCurve(ctx, project, now, redistribute)
	if err != nil {
		return nil, err
	}
	fields["cached"] = cached
	fields["weeks"] = chart.TotalWeeks

	resp = &app.CurveResponse{
		Project:  project,
		Chart:    chart,
		Warnings: chartWarnings(chart),
		Cached:   cached,
	}
	if risk, ok := progress.ComputeRisk(chart); ok {
		resp.Risk = &risk
	}
	return resp, nil
}

// computeCurve loads a project's planning data and returns its chart,
// from the memo cache when the inputs are unchanged.
func (s *curveService) computeCurve(ctx context.Context, p *domain.Project, now time.Time, redistribute bool) (progress.ChartData, bool, error) {
	tasks, snaps, err := s.loadInputs(ctx, p)
	if err != nil {
		return progress.ChartData{}, false, err
	}

	key, hashErr := newCurveKey(tasks, snaps, s.catalog, redistribute, now).hash()
	if hashErr == nil {
		if chart, ok := s.cache.get(key); ok {
			return chart, true, nil
		}
	} else {
		s.logger.Debug("curve cache key unavailable", zap.String("project", p.DisplayID()), zap.Error(hashErr))
	}

	opts := []progress.Option{progress.WithNow(now)}
	if !redistribute {
		opts = append(opts, progress.WithoutRedistribution())
	}
	chart := progress.ComputeProgressCurve(tasks, snaps, s.catalog, opts...)
	s.logChartWarnings(p, chart)

	if hashErr == nil {
		s.cache.put(key, chart)
	}
	return chart, false, nil
}

func (s *curveService) loadInputs(ctx context.Context, p *domain.Project) ([]domain.Task, []domain.PhaseSnapshot, error) {
	if s.uow == nil {
		return listInputs(ctx, p, s.tasks, s.snapshots)
	}

	var (
		tasks []domain.Task
		snaps []domain.PhaseSnapshot
	)
	err := s.uow.ReadConsistent(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		tasks, snaps, err = listInputs(ctx, p,
			repository.NewSQLiteTaskRepo(tx), repository.NewSQLiteSnapshotRepo(tx))
		return err
	})
	return tasks, snaps, err
}

func listInputs(ctx context.Context, p *domain.Project, tasks repository.TaskRepo, snapshots repository.SnapshotRepo) ([]domain.Task, []domain.PhaseSnapshot, error) {
	ts, err := tasks.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading tasks for %s: %w", p.DisplayID(), err)
	}
	snaps, err := snapshots.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading snapshots for %s: %w", p.DisplayID(), err)
	}
	return ts, snaps, nil
}

func (s *curveService) logChartWarnings(p *domain.Project, chart progress.ChartData) {
	if chart.Insufficient {
		s.logger.Info("insufficient planning data", zap.String("project", p.DisplayID()))
	}
	if chart.ZeroWeight {
		s.logger.Warn("scheduled phases carry no weight; curve is flat",
			zap.String("project", p.DisplayID()))
	}
	if len(chart.UnscheduledPhases) > 0 {
		s.logger.Warn("ignoring snapshots for phases without scheduled tasks",
			zap.String("project", p.DisplayID()),
			zap.Strings("phases", chart.UnscheduledPhases))
	}
}

func chartWarnings(chart progress.ChartData) []string {
	var warnings []string
	if chart.Insufficient {
		warnings = append(warnings, "insufficient planning data: no phase has a dated task")
	}
	if chart.ZeroWeight {
		warnings = append(warnings, "scheduled phases carry no weight; curve is flat at 0%")
	}
	if len(chart.UnscheduledPhases) > 0 {
		warnings = append(warnings, fmt.Sprintf("snapshots ignored for unscheduled phases: %s",
			strings.Join(chart.UnscheduledPhases, ", ")))
	}
	return warnings
}

func (s *curveService) GetStatus(ctx context.Context, req app.StatusRequest) (resp *app.StatusResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "status", time.Now(), fields, &err)

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	projects, err := s.projects.List(ctx, req.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	scoped := filterProjectsByScope(projects, req.ProjectScope)
	warnings := unmatchedScopeWarnings(scoped, req.ProjectScope)

	var active []*domain.Project
	for _, p := range scoped {
		if p.Status == domain.ProjectActive || (req.IncludeArchived && p.Status == domain.ProjectArchived) {
			active = append(active, p)
		}
	}
	fields["project_count"] = len(active)

	limit := req.Concurrency
	if limit <= 0 {
		limit = s.concurrency
	}

	charts := make([]progress.ChartData, len(active))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range active {
		g.Go(func() error {
			chart, _, err := s.computeCurve(gctx, p, now, s.redistribute)
			if err != nil {
				return err
			}
			charts[i] = chart
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]app.ProjectStatusView, len(active))
	for i, p := range active {
		views[i] = buildStatusView(p, charts[i])
	}
	views = sortStatusViews(views)

	return &app.StatusResponse{
		Summary:  buildStatusSummary(views, now),
		Projects: views,
		Warnings: warnings,
	}, nil
}

func buildStatusView(p *domain.Project, chart progress.ChartData) app.ProjectStatusView {
	view := app.ProjectStatusView{
		ProjectID:    p.ID,
		ShortID:      p.ShortID,
		ProjectName:  p.Name,
		Status:       p.Status,
		CurrentWeek:  chart.CurrentWeek,
		TotalWeeks:   chart.TotalWeeks,
		Insufficient: chart.Insufficient,
		Notes:        chartWarnings(chart),
	}
	if risk, ok := progress.ComputeRisk(chart); ok {
		view.RiskLevel = risk.Level
		view.ActualPercent = risk.ActualPercent
		view.PlannedPercent = risk.PlannedPercent
		view.DeviationPts = risk.DeviationPts
	}
	return view
}

// sortStatusViews orders views most urgent first using progress.SortByRisk.
func sortStatusViews(views []app.ProjectStatusView) []app.ProjectStatusView {
	ranked := make([]progress.RankedRisk, len(views))
	byID := make(map[string]app.ProjectStatusView, len(views))
	for i, v := range views {
		ranked[i] = progress.RankedRisk{ProjectID: v.ProjectID, ProjectName: v.ProjectName}
		if !v.Insufficient && v.RiskLevel != "" {
			ranked[i].Risk = &progress.RiskResult{
				Level:          v.RiskLevel,
				Week:           v.CurrentWeek,
				ActualPercent:  v.ActualPercent,
				PlannedPercent: v.PlannedPercent,
				DeviationPts:   v.DeviationPts,
			}
		}
		byID[v.ProjectID] = v
	}
	progress.SortByRisk(ranked)

	sorted := make([]app.ProjectStatusView, 0, len(views))
	for _, r := range ranked {
		sorted = append(sorted, byID[r.ProjectID])
	}
	return sorted
}

func buildStatusSummary(views []app.ProjectStatusView, now time.Time) app.StatusSummary {
	summary := app.StatusSummary{GeneratedAt: now, CountsTotal: len(views)}
	for _, v := range views {
		if v.Insufficient {
			summary.CountsInsufficient++
			continue
		}
		switch v.RiskLevel {
		case domain.RiskOnTrack:
			summary.CountsOnTrack++
		case domain.RiskAtRisk:
			summary.CountsAtRisk++
		case domain.RiskCritical:
			summary.CountsCritical++
		}
	}
	return summary
}

func unmatchedScopeWarnings(scoped []*domain.Project, scope []string) []string {
	var warnings []string
	for _, ref := range scope {
		found := false
		for _, p := range scoped {
			if strings.EqualFold(p.ID, ref) || strings.EqualFold(p.ShortID, ref) {
				found = true
				break
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf("no project matches %q", ref))
		}
	}
	return warnings
}
