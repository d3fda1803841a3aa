package like

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	BoardExists(ctx context.Context, boardID uint64) (bool, error)
	Exists(ctx context.Context, boardID, userID uint64) (bool, error)
	Create(ctx context.Context, l *Like) error
	Delete(ctx context.Context, boardID, userID uint64) error
	CountByBoard(ctx context.Context, boardID uint64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BoardExists(ctx context.Context, boardID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("boards").
		Where("id = ?", boardID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Exists(ctx context.Context, boardID, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Like{}).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, l *Like) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) Delete(ctx context.Context, boardID, userID uint64) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Delete(&Like{}).Error
}

func (r *repository) CountByBoard(ctx context.Context, boardID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Like{}).
		Where("board_id = ?", boardID).
		Count(&count).Error
	return count, err
}
