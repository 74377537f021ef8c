package service

import (
	"context"
	"errors"

	"github.com/psds-microservice/office-manager/internal/errs"
	"github.com/psds-microservice/office-manager/internal/model"
	"gorm.io/gorm"
)

type UserServicer interface {
	FindByCredentials(ctx context.Context, username, password string) (*model.User, error)
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(ctx context.Context, u *model.User) error {
	if u.Role == "" {
		u.Role = model.DefaultUserRole
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return errs.Storage("failed to create user", err)
	}
	return nil
}

// FindByCredentials returns nil, nil when no user matches both fields exactly.
func (s *UserService) FindByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Storage("failed to look up user", err)
	}
	return &u, nil
}
