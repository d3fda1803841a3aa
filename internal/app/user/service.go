package user

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetProfile(ctx context.Context, userID uint64) (*ProfileResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.Sugar(),
	}
}

func (s *service) GetProfile(ctx context.Context, userID uint64) (*ProfileResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}

	return &ProfileResponse{
		Email:           u.Email,
		Name:            u.Name,
		Gender:          u.Gender,
		ProfileImageURL: u.ProfileImageURL,
		Role:            u.Role,
	}, nil
}
