package route

import "time"

type PlaceCategory string

const (
	PlaceRestaurant PlaceCategory = "RESTAURANT"
	PlaceAttraction PlaceCategory = "ATTRACTION"
	PlaceLodging    PlaceCategory = "LODGING"
	PlaceEtc        PlaceCategory = "ETC"
)

func (c PlaceCategory) Valid() bool {
	switch c {
	case PlaceRestaurant, PlaceAttraction, PlaceLodging, PlaceEtc:
		return true
	}
	return false
}

type Route struct {
	ID          uint64     `json:"id" gorm:"primaryKey"`
	UserID      uint64     `json:"user_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"not null"`
	Description *string    `json:"description,omitempty"`
	StartAt     time.Time  `json:"start_at" gorm:"type:date;not null"`
	EndAt       time.Time  `json:"end_at" gorm:"type:date;not null"`
	CreatedAt   time.Time  `json:"created_at"`
	Days        []RouteDay `json:"days,omitempty" gorm:"foreignKey:RouteID"`
}

func (Route) TableName() string {
	return "routes"
}

type RouteDay struct {
	ID      uint64          `json:"id" gorm:"primaryKey"`
	RouteID uint64          `json:"route_id" gorm:"not null;index"`
	Day     time.Time       `json:"day" gorm:"type:date;not null"`
	Places  []RouteDayPlace `json:"places,omitempty" gorm:"foreignKey:RouteDayID"`
}

func (RouteDay) TableName() string {
	return "route_days"
}

type RouteDayPlace struct {
	ID            uint64        `json:"id" gorm:"primaryKey"`
	RouteDayID    uint64        `json:"route_day_id" gorm:"not null;index"`
	PlaceName     string        `json:"place_name" gorm:"not null"`
	PlaceCategory PlaceCategory `json:"place_category" gorm:"type:varchar(20);not null"`
}

func (RouteDayPlace) TableName() string {
	return "route_day_places"
}

type CreatePlaceRequest struct {
	PlaceName     string `json:"placeName" binding:"required"`
	PlaceCategory string `json:"placeCategory" binding:"required"`
}

type CreateDayRequest struct {
	Day    string               `json:"day" binding:"required"`
	Places []CreatePlaceRequest `json:"places"`
}

type CreateRouteRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description *string            `json:"description"`
	StartAt     string             `json:"startAt" binding:"required"`
	EndAt       string             `json:"endAt" binding:"required"`
	Days        []CreateDayRequest `json:"days"`
}

type RouteListResponse struct {
	Routes []*Route `json:"routes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
