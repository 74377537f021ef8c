package service

import (
	"context"

	"github.com/psds-microservice/office-manager/internal/errs"
	"github.com/psds-microservice/office-manager/internal/model"
	"gorm.io/gorm"
)

// TicketServicer — интерфейс хранилища тикетов для handler (Dependency Inversion).
type TicketServicer interface {
	Create(ctx context.Context, t *model.Ticket) error
	List(ctx context.Context) ([]model.Ticket, error)
	Count(ctx context.Context) (int64, error)
}

type TicketService struct {
	db *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{db: db}
}

// Create fills in the default status and category and persists t.
func (s *TicketService) Create(ctx context.Context, t *model.Ticket) error {
	if t.Status == "" {
		t.Status = model.TicketStatusOpen
	}
	if t.Category == "" {
		t.Category = model.DefaultTicketCategory
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return errs.Storage("failed to create ticket", err)
	}
	return nil
}

// List returns all tickets, newest first.
func (s *TicketService) List(ctx context.Context) ([]model.Ticket, error) {
	var items []model.Ticket
	if err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, errs.Storage("failed to list tickets", err)
	}
	return items, nil
}

func (s *TicketService) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, &model.Ticket{}, "tickets")
}

func count(ctx context.Context, db *gorm.DB, m interface{}, kind string) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(m).Count(&n).Error; err != nil {
		return 0, errs.Storage("failed to count "+kind, err)
	}
	return n, nil
}
