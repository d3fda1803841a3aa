package seeder

import (
	"time"

	"backend/internal/app/board"
	"backend/internal/app/route"
	"backend/internal/app/trip"
	"backend/internal/app/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder fills an empty dev database with a couple of users, a route and a
// companion board so the API is browsable right after startup.
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedUsers(); err != nil {
		return err
	}
	if err := s.seedRoutes(); err != nil {
		return err
	}
	if err := s.seedBoards(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedUsers() error {
	var count int64
	s.db.Model(&user.User{}).Count(&count)
	if count > 0 {
		s.logger.Info("Users already exist, skipping seed")
		return nil
	}

	users := []user.User{
		{Email: "mina@example.com", Name: "mina", Gender: user.GenderFemale, Role: user.RoleUser},
		{Email: "jun@example.com", Name: "jun", Gender: user.GenderMale, Role: user.RoleUser},
	}

	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded users", zap.Int("count", len(users)))
	return nil
}

func (s *Seeder) seedRoutes() error {
	var count int64
	s.db.Model(&route.Route{}).Count(&count)
	if count > 0 {
		s.logger.Info("Routes already exist, skipping seed")
		return nil
	}

	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	rt := route.Route{
		UserID:  1,
		Title:   "Busan weekend loop",
		StartAt: start,
		EndAt:   start.AddDate(0, 0, 1),
		Days: []route.RouteDay{
			{
				Day: start,
				Places: []route.RouteDayPlace{
					{PlaceName: "Gwangalli Beach", PlaceCategory: route.PlaceAttraction},
					{PlaceName: "Millak Raw Fish Center", PlaceCategory: route.PlaceRestaurant},
				},
			},
			{
				Day: start.AddDate(0, 0, 1),
				Places: []route.RouteDayPlace{
					{PlaceName: "Gamcheon Culture Village", PlaceCategory: route.PlaceAttraction},
					{PlaceName: "Harborside Guesthouse", PlaceCategory: route.PlaceLodging},
				},
			},
		},
	}

	if err := s.db.Create(&rt).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded routes", zap.Int("count", 1))
	return nil
}

func (s *Seeder) seedBoards() error {
	var count int64
	s.db.Model(&board.Board{}).Count(&count)
	if count > 0 {
		s.logger.Info("Boards already exist, skipping seed")
		return nil
	}

	b := board.Board{
		AuthorID: 1,
		RouteID:  1,
		Title:    "Looking for two more for a Busan weekend",
		Summary:  "Beach, seafood and Gamcheon on Sunday",
		Content:  "Easygoing pace, splitting lodging costs.",
		Category: board.CategoryCompanion,
	}
	if err := s.db.Create(&b).Error; err != nil {
		return err
	}

	t := trip.Trip{
		BoardID:      b.ID,
		AgeMin:       20,
		AgeMax:       45,
		TargetNumber: 3,
		Gender:       trip.GenderAny,
	}
	if err := s.db.Create(&t).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded boards", zap.Int("count", 1))
	return nil
}
