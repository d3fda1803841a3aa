package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	CreateRoute(ctx context.Context, userID uint64, req *CreateRouteRequest) (*Route, error)
	GetRoute(ctx context.Context, id uint64) (*Route, error)
	ListMyRoutes(ctx context.Context, userID uint64) ([]*Route, error)
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

func (s *service) CreateRoute(ctx context.Context, userID uint64, req *CreateRouteRequest) (*Route, error) {
	startAt, err := time.Parse(dateLayout, req.StartAt)
	if err != nil {
		return nil, apperror.BadRequest("startAt must be formatted as yyyy-MM-dd")
	}
	endAt, err := time.Parse(dateLayout, req.EndAt)
	if err != nil {
		return nil, apperror.BadRequest("endAt must be formatted as yyyy-MM-dd")
	}
	if endAt.Before(startAt) {
		return nil, apperror.BadRequest("endAt must not be before startAt")
	}

	rt := &Route{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		StartAt:     startAt,
		EndAt:       endAt,
		CreatedAt:   time.Now(),
	}

	for _, dayReq := range req.Days {
		day, err := time.Parse(dateLayout, dayReq.Day)
		if err != nil {
			return nil, apperror.BadRequest("day must be formatted as yyyy-MM-dd")
		}
		rd := RouteDay{Day: day}
		for _, placeReq := range dayReq.Places {
			category := PlaceCategory(placeReq.PlaceCategory)
			if !category.Valid() {
				return nil, apperror.BadRequest("unknown place category: " + placeReq.PlaceCategory)
			}
			rd.Places = append(rd.Places, RouteDayPlace{
				PlaceName:     placeReq.PlaceName,
				PlaceCategory: category,
			})
		}
		rt.Days = append(rt.Days, rd)
	}

	if err := s.repo.Create(ctx, rt); err != nil {
		s.logger.Errorw("Failed to create route", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	s.logger.Infow("Route created", "route_id", rt.ID, "user_id", userID, "days", len(rt.Days))
	return rt, nil
}

func (s *service) GetRoute(ctx context.Context, id uint64) (*Route, error) {
	rt, err := s.repo.FindWithDays(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("route not found")
		}
		return nil, fmt.Errorf("failed to load route %d: %w", id, err)
	}
	return rt, nil
}

func (s *service) ListMyRoutes(ctx context.Context, userID uint64) ([]*Route, error) {
	routes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}
