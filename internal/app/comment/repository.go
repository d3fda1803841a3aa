package comment

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	BoardExists(ctx context.Context, boardID uint64) (bool, error)
	Create(ctx context.Context, cm *Comment) error
	FindByID(ctx context.Context, id uint64) (*Comment, error)
	ListByBoard(ctx context.Context, boardID uint64) ([]*Comment, error)
	Delete(ctx context.Context, id uint64) error
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

func (r *repository) Create(ctx context.Context, cm *Comment) error {
	return r.db.WithContext(ctx).Create(cm).Error
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*Comment, error) {
	var cm Comment
	err := r.db.WithContext(ctx).First(&cm, id).Error
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *repository) ListByBoard(ctx context.Context, boardID uint64) ([]*Comment, error) {
	var comments []*Comment
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.*, users.name as author_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.board_id = ?", boardID).
		Order("comments.created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *repository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&Comment{}, id).Error
}
