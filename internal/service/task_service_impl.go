package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
}

func NewTaskService(tasks repository.TaskRepo, projects repository.ProjectRepo) TaskService {
	return &taskService{tasks: tasks, projects: projects}
}

func validateTask(t *domain.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if t.FullyPlanned() && t.PlannedEnd.Before(*t.PlannedStart) {
		return fmt.Errorf("planned end %s is before planned start %s",
			t.PlannedEnd.Format("2006-01-02"), t.PlannedStart.Format("2006-01-02"))
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if err := validateTask(t); err != nil {
		return err
	}
	if _, err := s.projects.GetByID(ctx, t.ProjectID); err != nil {
		return fmt.Errorf("loading project for task: %w", err)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := validateTask(t); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
