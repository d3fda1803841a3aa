package trip

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetByBoard(ctx context.Context, boardID uint64) (*TripResponse, error)
	Join(ctx context.Context, userID, tripID uint64) (*TripResponse, error)
	Leave(ctx context.Context, userID, tripID uint64) error
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

func (s *service) GetByBoard(ctx context.Context, boardID uint64) (*TripResponse, error) {
	t, err := s.repo.FindByBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("trip not found")
		}
		return nil, fmt.Errorf("failed to load trip for board %d: %w", boardID, err)
	}

	count, err := s.repo.ParticipantCount(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}
	return &TripResponse{Trip: t, ParticipantCount: count}, nil
}

// Join adds the user to the trip unless the trip is already at its target
// participant count. Races between concurrent joins fall back to the unique
// (trip_id, user_id) index and the store's isolation level.
func (s *service) Join(ctx context.Context, userID, tripID uint64) (*TripResponse, error) {
	t, err := s.repo.FindByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("trip not found")
		}
		return nil, fmt.Errorf("failed to load trip %d: %w", tripID, err)
	}

	joined, err := s.repo.IsParticipant(ctx, tripID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	if joined {
		return nil, apperror.BadRequest("already joined this trip")
	}

	count, err := s.repo.ParticipantCount(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}
	if count >= int64(t.TargetNumber) {
		return nil, apperror.BadRequest("trip is already full")
	}

	if err := s.repo.AddParticipant(ctx, tripID, userID); err != nil {
		return nil, fmt.Errorf("failed to join trip: %w", err)
	}

	s.logger.Infow("User joined trip", "trip_id", tripID, "user_id", userID)
	return &TripResponse{Trip: t, ParticipantCount: count + 1}, nil
}

func (s *service) Leave(ctx context.Context, userID, tripID uint64) error {
	joined, err := s.repo.IsParticipant(ctx, tripID, userID)
	if err != nil {
		return fmt.Errorf("failed to check participation: %w", err)
	}
	if !joined {
		return apperror.NotFound("not a participant of this trip")
	}
	return s.repo.RemoveParticipant(ctx, tripID, userID)
}
