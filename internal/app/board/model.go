package board

import (
	"time"

	"backend/internal/app/image"
	"backend/internal/app/route"
	"backend/internal/app/user"
)

type Category string

const (
	CategoryReview    Category = "REVIEW"
	CategoryGuide     Category = "GUIDE"
	CategoryCompanion Category = "COMPANION"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryReview, CategoryGuide, CategoryCompanion:
		return true
	}
	return false
}

// RequiresTrip reports whether boards of this category carry a trip
// sub-aggregate (age bounds, capacity, gender constraint).
func (c Category) RequiresTrip() bool {
	return c == CategoryGuide || c == CategoryCompanion
}

type Board struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	AuthorID  uint64    `json:"user_id" gorm:"column:user_id;not null;index"`
	RouteID   uint64    `json:"route_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Category  Category  `json:"category" gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time `json:"created_at"`

	Author user.User     `json:"-" gorm:"foreignKey:AuthorID"`
	Route  route.Route   `json:"-" gorm:"foreignKey:RouteID"`
	Images []image.Image `json:"-" gorm:"foreignKey:BoardID"`
}

func (Board) TableName() string {
	return "boards"
}

// CreateBoardRequest is bound from multipart form fields; image files travel
// separately in the same form. Updates reuse the same shape.
type CreateBoardRequest struct {
	RouteID      uint64 `form:"routeId" binding:"required"`
	Title        string `form:"title" binding:"required"`
	Summary      string `form:"summary"`
	Content      string `form:"content"`
	Category     string `form:"category" binding:"required"`
	AgeMin       int    `form:"ageMin"`
	AgeMax       int    `form:"ageMax"`
	TargetNumber int    `form:"targetNumber"`
	Gender       string `form:"gender"`
}

type SummaryListResponse struct {
	Boards []Summary `json:"boards"`
}

type SimpleListResponse struct {
	Message string       `json:"message"`
	Boards  []SimpleCard `json:"boards"`
}

type ParticipatedResponse struct {
	Message string    `json:"message"`
	Boards  []Summary `json:"boards"`
}

type MainResponse struct {
	Review    []MainCard `json:"review"`
	Guide     []MainCard `json:"guide"`
	Companion []MainCard `json:"companion"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
