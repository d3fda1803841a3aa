package route

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, id uint64) (*Route, error)
	// FindWithDays loads the route together with its days and places, both in
	// insertion order. Fetch breadth is the method, not a flag.
	FindWithDays(ctx context.Context, id uint64) (*Route, error)
	ListByUser(ctx context.Context, userID uint64) ([]*Route, error)
	Create(ctx context.Context, r *Route) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*Route, error) {
	var rt Route
	err := r.db.WithContext(ctx).First(&rt, id).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repository) FindWithDays(ctx context.Context, id uint64) (*Route, error) {
	var rt Route
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_days.id ASC")
		}).
		Preload("Days.Places", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_day_places.id ASC")
		}).
		First(&rt, id).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint64) ([]*Route, error) {
	var routes []*Route
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&routes).Error
	return routes, err
}

func (r *repository) Create(ctx context.Context, rt *Route) error {
	// Nested days/places ride along in one insert batch per level, keeping
	// primary-key order equal to slice order.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(rt).Error
	})
}
