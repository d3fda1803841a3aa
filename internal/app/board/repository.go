package board

import (
	"context"
	"time"

	"backend/internal/app/comment"
	"backend/internal/app/image"
	"backend/internal/app/like"
	"backend/internal/app/route"
	"backend/internal/app/trip"

	"gorm.io/gorm"
)

// ListFilter narrows the listing queries. From/To select boards whose route
// date range overlaps [From, To]; both must be set for the filter to apply.
type ListFilter struct {
	Category *Category
	From     *time.Time
	To       *time.Time
}

// Repository is the storage gateway of the board workflow: every query and
// write the workflow needs, each returning exactly the shape its caller
// consumes. Cross-aggregate rows (images, trip, likes, comments,
// participants) are owned here for the cascading flows.
type Repository interface {
	// Transaction runs fn against a transaction-scoped gateway; every write
	// inside either fully commits or fully rolls back.
	Transaction(ctx context.Context, fn func(r Repository) error) error

	FindByID(ctx context.Context, id uint64) (*Board, error)
	// FindDetailByID eagerly loads author, route and ordered images.
	FindDetailByID(ctx context.Context, id uint64) (*Board, error)
	ListAll(ctx context.Context, filter ListFilter, sort SortSpec) ([]*Board, error)
	ListLikedByUser(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) ([]*Board, error)
	ListParticipatedByUser(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) ([]*Board, error)
	ListByUserAndCategory(ctx context.Context, userID uint64, category Category) ([]*Board, error)
	// ListTopByCategory returns the top boards of one category: newest first,
	// or by like count when byLikes is set.
	ListTopByCategory(ctx context.Context, category Category, limit int, byLikes bool) ([]*Board, error)

	CountLikes(ctx context.Context, boardID uint64) (int64, error)
	CountByUserAndCategory(ctx context.Context, userID uint64, category Category) (int64, error)

	RouteExists(ctx context.Context, routeID uint64) (bool, error)
	RouteWithDays(ctx context.Context, routeID uint64) (*route.Route, error)
	TripByBoard(ctx context.Context, boardID uint64) (*trip.Trip, error)
	ImagesByBoard(ctx context.Context, boardID uint64) ([]*image.Image, error)

	Create(ctx context.Context, b *Board) error
	Update(ctx context.Context, b *Board) error
	CreateImage(ctx context.Context, img *image.Image) error
	UpsertTrip(ctx context.Context, t *trip.Trip) error

	DeleteImagesByBoard(ctx context.Context, boardID uint64) error
	DeleteParticipantsByTrip(ctx context.Context, tripID uint64) error
	DeleteTripByBoard(ctx context.Context, boardID uint64) error
	DeleteLikesByBoard(ctx context.Context, boardID uint64) error
	DeleteCommentsByBoard(ctx context.Context, boardID uint64) error
	Delete(ctx context.Context, boardID uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("board_images.id ASC")
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*Board, error) {
	var b Board
	err := r.db.WithContext(ctx).First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindDetailByID(ctx context.Context, id uint64) (*Board, error) {
	var b Board
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Route").
		Preload("Images", orderedImages).
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// applyFilter narrows a boards query by category and route date overlap. The
// date filter joins routes; listing queries sort on boards.* columns only, so
// the extra join never affects ordering.
func applyFilter(q *gorm.DB, filter ListFilter) *gorm.DB {
	if filter.Category != nil {
		q = q.Where("boards.category = ?", *filter.Category)
	}
	if filter.From != nil && filter.To != nil {
		q = q.Joins("JOIN routes ON routes.id = boards.route_id").
			Where("routes.start_at <= ? AND routes.end_at >= ?", *filter.To, *filter.From)
	}
	return q
}

// applySort delegates persisted-column ordering to the database. Derived
// specs (likes) deliberately leave the result unordered; the ranking pass
// happens in memory after like counts are attached.
func applySort(q *gorm.DB, sort SortSpec) *gorm.DB {
	if sort.Derived() {
		return q
	}
	return q.Order(sort.Column())
}

func (r *repository) ListAll(ctx context.Context, filter ListFilter, sort SortSpec) ([]*Board, error) {
	var boards []*Board
	q := r.db.WithContext(ctx).Model(&Board{}).
		Preload("Author").
		Preload("Route").
		Preload("Images", orderedImages)
	q = applyFilter(q, filter)
	q = applySort(q, sort)
	err := q.Find(&boards).Error
	return boards, err
}

func (r *repository) ListLikedByUser(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) ([]*Board, error) {
	var boards []*Board
	q := r.db.WithContext(ctx).Model(&Board{}).
		Preload("Author").
		Preload("Route").
		Preload("Images", orderedImages).
		Joins("JOIN likes ON likes.board_id = boards.id").
		Where("likes.user_id = ?", userID)
	q = applyFilter(q, filter)
	q = applySort(q, sort)
	err := q.Find(&boards).Error
	return boards, err
}

func (r *repository) ListParticipatedByUser(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) ([]*Board, error) {
	var boards []*Board
	q := r.db.WithContext(ctx).Model(&Board{}).
		Preload("Author").
		Preload("Route").
		Preload("Images", orderedImages).
		Joins("JOIN trips ON trips.board_id = boards.id").
		Joins("JOIN users_in_travel ON users_in_travel.trip_id = trips.id").
		Where("users_in_travel.user_id = ?", userID)
	q = applyFilter(q, filter)
	q = applySort(q, sort)
	err := q.Find(&boards).Error
	return boards, err
}

func (r *repository) ListByUserAndCategory(ctx context.Context, userID uint64, category Category) ([]*Board, error) {
	var boards []*Board
	err := r.db.WithContext(ctx).Model(&Board{}).
		Preload("Images", orderedImages).
		Where("boards.user_id = ? AND boards.category = ?", userID, category).
		Order("boards.created_at DESC").
		Find(&boards).Error
	return boards, err
}

func (r *repository) ListTopByCategory(ctx context.Context, category Category, limit int, byLikes bool) ([]*Board, error) {
	var boards []*Board
	q := r.db.WithContext(ctx).Model(&Board{}).
		Preload("Author").
		Preload("Images", orderedImages).
		Where("boards.category = ?", category)

	if byLikes {
		q = q.
			Select("boards.*, COUNT(likes.id) AS like_total").
			Joins("LEFT JOIN likes ON likes.board_id = boards.id").
			Group("boards.id").
			Order("like_total DESC")
	} else {
		q = q.Order("boards.created_at DESC")
	}

	err := q.Limit(limit).Find(&boards).Error
	return boards, err
}

func (r *repository) CountLikes(ctx context.Context, boardID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&like.Like{}).
		Where("board_id = ?", boardID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByUserAndCategory(ctx context.Context, userID uint64, category Category) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Board{}).
		Where("user_id = ? AND category = ?", userID, category).
		Count(&count).Error
	return count, err
}

func (r *repository) RouteExists(ctx context.Context, routeID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&route.Route{}).
		Where("id = ?", routeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) RouteWithDays(ctx context.Context, routeID uint64) (*route.Route, error) {
	var rt route.Route
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_days.id ASC")
		}).
		Preload("Days.Places", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_day_places.id ASC")
		}).
		First(&rt, routeID).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repository) TripByBoard(ctx context.Context, boardID uint64) (*trip.Trip, error) {
	var t trip.Trip
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ImagesByBoard(ctx context.Context, boardID uint64) ([]*image.Image, error) {
	var images []*image.Image
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("id ASC").
		Find(&images).Error
	return images, err
}

func (r *repository) Create(ctx context.Context, b *Board) error {
	return r.db.WithContext(ctx).Omit("Author", "Route", "Images").Create(b).Error
}

func (r *repository) Update(ctx context.Context, b *Board) error {
	return r.db.WithContext(ctx).Omit("Author", "Route", "Images").Save(b).Error
}

func (r *repository) CreateImage(ctx context.Context, img *image.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *repository) UpsertTrip(ctx context.Context, t *trip.Trip) error {
	var existing trip.Trip
	err := r.db.WithContext(ctx).Where("board_id = ?", t.BoardID).First(&existing).Error
	if err == nil {
		t.ID = existing.ID
		return r.db.WithContext(ctx).Save(t).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) DeleteImagesByBoard(ctx context.Context, boardID uint64) error {
	return r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&image.Image{}).Error
}

func (r *repository) DeleteParticipantsByTrip(ctx context.Context, tripID uint64) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Delete(&trip.Participant{}).Error
}

func (r *repository) DeleteTripByBoard(ctx context.Context, boardID uint64) error {
	return r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&trip.Trip{}).Error
}

func (r *repository) DeleteLikesByBoard(ctx context.Context, boardID uint64) error {
	return r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&like.Like{}).Error
}

func (r *repository) DeleteCommentsByBoard(ctx context.Context, boardID uint64) error {
	return r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&comment.Comment{}).Error
}

func (r *repository) Delete(ctx context.Context, boardID uint64) error {
	return r.db.WithContext(ctx).Delete(&Board{}, boardID).Error
}
