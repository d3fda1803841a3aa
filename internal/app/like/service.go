package like

import (
	"context"
	"fmt"

	"backend/internal/apperror"

	"go.uber.org/zap"
)

type Service interface {
	Toggle(ctx context.Context, userID, boardID uint64) (*ToggleResponse, error)
	CountByBoard(ctx context.Context, boardID uint64) (int64, error)
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

// Toggle likes the board for the user, or removes the like if one exists.
// Concurrent toggles for the same pair are resolved by the unique index.
func (s *service) Toggle(ctx context.Context, userID, boardID uint64) (*ToggleResponse, error) {
	exists, err := s.repo.BoardExists(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to check board %d: %w", boardID, err)
	}
	if !exists {
		return nil, apperror.NotFound("board not found")
	}

	liked, err := s.repo.Exists(ctx, boardID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check like: %w", err)
	}

	if liked {
		if err := s.repo.Delete(ctx, boardID, userID); err != nil {
			return nil, fmt.Errorf("failed to remove like: %w", err)
		}
	} else {
		if err := s.repo.Create(ctx, &Like{BoardID: boardID, UserID: userID}); err != nil {
			return nil, fmt.Errorf("failed to add like: %w", err)
		}
	}

	count, err := s.repo.CountByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	s.logger.Infow("Like toggled", "board_id", boardID, "user_id", userID, "liked", !liked)
	return &ToggleResponse{Liked: !liked, LikeCount: count}, nil
}

func (s *service) CountByBoard(ctx context.Context, boardID uint64) (int64, error) {
	return s.repo.CountByBoard(ctx, boardID)
}
