package trip

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, id uint64) (*Trip, error)
	FindByBoard(ctx context.Context, boardID uint64) (*Trip, error)
	ParticipantCount(ctx context.Context, tripID uint64) (int64, error)
	IsParticipant(ctx context.Context, tripID, userID uint64) (bool, error)
	AddParticipant(ctx context.Context, tripID, userID uint64) error
	RemoveParticipant(ctx context.Context, tripID, userID uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*Trip, error) {
	var t Trip
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByBoard(ctx context.Context, boardID uint64) (*Trip, error) {
	var t Trip
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ParticipantCount(ctx context.Context, tripID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Participant{}).
		Where("trip_id = ?", tripID).
		Count(&count).Error
	return count, err
}

func (r *repository) IsParticipant(ctx context.Context, tripID, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Participant{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) AddParticipant(ctx context.Context, tripID, userID uint64) error {
	return r.db.WithContext(ctx).Create(&Participant{TripID: tripID, UserID: userID}).Error
}

func (r *repository) RemoveParticipant(ctx context.Context, tripID, userID uint64) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Delete(&Participant{}).Error
}
