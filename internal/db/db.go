package db

import (
	"backend/internal/app/board"
	"backend/internal/app/comment"
	"backend/internal/app/image"
	"backend/internal/app/like"
	"backend/internal/app/route"
	"backend/internal/app/trip"
	"backend/internal/app/user"
	"backend/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.PostgresDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)

	return db, nil
}

// Migrate creates or updates every table. Parents go before the tables that
// reference them.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&user.User{},
		&route.Route{},
		&route.RouteDay{},
		&route.RouteDayPlace{},
		&board.Board{},
		&image.Image{},
		&trip.Trip{},
		&trip.Participant{},
		&like.Like{},
		&comment.Comment{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migrated")
	return nil
}
