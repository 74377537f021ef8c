package service

import (
	"context"

	"github.com/psds-microservice/office-manager/internal/errs"
	"github.com/psds-microservice/office-manager/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReferralSource earns the referral bonus in LeadScore.
const ReferralSource = "Referral"

type LeadServicer interface {
	Create(ctx context.Context, l *model.Lead) error
	List(ctx context.Context) ([]model.Lead, error)
	Count(ctx context.Context) (int64, error)
}

type LeadService struct {
	db *gorm.DB
}

func NewLeadService(db *gorm.DB) *LeadService {
	return &LeadService{db: db}
}

// Create persists l as given. Score is stored verbatim, never recomputed.
func (s *LeadService) Create(ctx context.Context, l *model.Lead) error {
	if l.Extra == nil {
		l.Extra = datatypes.JSONMap{}
	}
	if err := s.db.WithContext(ctx).Create(l).Error; err != nil {
		return errs.Storage("failed to create lead", err)
	}
	return nil
}

func (s *LeadService) List(ctx context.Context) ([]model.Lead, error) {
	var items []model.Lead
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, errs.Storage("failed to list leads", err)
	}
	return items, nil
}

func (s *LeadService) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, &model.Lead{}, "leads")
}

// LeadScore is the score the dashboard assigns when a lead is entered:
// 40 + deal_size/1000, plus 10 for referrals.
func LeadScore(dealSize float64, source string) float64 {
	score := 40 + dealSize/1000
	if source == ReferralSource {
		score += 10
	}
	return score
}
