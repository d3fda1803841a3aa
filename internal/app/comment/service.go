package comment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateComment(ctx context.Context, userID, boardID uint64, req *CreateCommentRequest) (*Comment, error)
	ListByBoard(ctx context.Context, boardID uint64) ([]*Comment, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
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

func (s *service) CreateComment(ctx context.Context, userID, boardID uint64, req *CreateCommentRequest) (*Comment, error) {
	exists, err := s.repo.BoardExists(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to check board %d: %w", boardID, err)
	}
	if !exists {
		return nil, apperror.NotFound("board not found")
	}

	cm := &Comment{
		BoardID:   boardID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, cm); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Infow("Comment created", "comment_id", cm.ID, "board_id", boardID, "user_id", userID)
	return cm, nil
}

func (s *service) ListByBoard(ctx context.Context, boardID uint64) ([]*Comment, error) {
	exists, err := s.repo.BoardExists(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to check board %d: %w", boardID, err)
	}
	if !exists {
		return nil, apperror.NotFound("board not found")
	}
	return s.repo.ListByBoard(ctx, boardID)
}

func (s *service) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	cm, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("comment not found")
		}
		return fmt.Errorf("failed to load comment %d: %w", commentID, err)
	}
	if cm.UserID != userID {
		return apperror.Unauthorized("not allowed to delete this comment")
	}
	return s.repo.Delete(ctx, commentID)
}
