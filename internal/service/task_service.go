package service

import (
	"context"

	"github.com/psds-microservice/office-manager/internal/errs"
	"github.com/psds-microservice/office-manager/internal/model"
	"gorm.io/gorm"
)

type TaskServicer interface {
	Create(ctx context.Context, t *model.Task) error
	List(ctx context.Context) ([]model.Task, error)
	Count(ctx context.Context) (int64, error)
}

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) Create(ctx context.Context, t *model.Task) error {
	if t.Priority == "" {
		t.Priority = model.DefaultTaskPriority
	}
	if t.Status == "" {
		t.Status = model.TaskStatusPending
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return errs.Storage("failed to create task", err)
	}
	return nil
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	var items []model.Task
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, errs.Storage("failed to list tasks", err)
	}
	return items, nil
}

func (s *TaskService) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, &model.Task{}, "tasks")
}
