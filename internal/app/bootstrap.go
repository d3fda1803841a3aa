package app

import (
	"backend/internal/app/board"
	"backend/internal/app/comment"
	"backend/internal/app/health"
	"backend/internal/app/like"
	"backend/internal/app/route"
	"backend/internal/app/trip"
	"backend/internal/app/user"
	"backend/internal/config"
	"backend/internal/db"
	"backend/internal/db/seeder"
	"backend/internal/providers/minio"
	"backend/internal/providers/redis"
	"backend/internal/router"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	if cfg.Env == "dev" {
		seed := seeder.NewSeeder(dbConn, logger)
		if err := seed.Seed(); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger)
	minioProvider, err := minio.NewMinioProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	userRepo := user.NewRepository(dbConn)
	routeRepo := route.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)
	likeRepo := like.NewRepository(dbConn)
	commentRepo := comment.NewRepository(dbConn)
	tripRepo := trip.NewRepository(dbConn)

	userService := user.NewService(userRepo, logger)
	routeService := route.NewService(routeRepo, logger)
	boardService := board.NewService(boardRepo, userRepo, minioProvider, cfg.MaxImagesPerPost, logger)
	likeService := like.NewService(likeRepo, logger)
	commentService := comment.NewService(commentRepo, logger)
	tripService := trip.NewService(tripRepo, logger)

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:          dbConn,
		Redis:       redisProvider.Client,
		Minio:       minioProvider.Client(),
		MinioBucket: minioProvider.Bucket(),
	})
	userHandler := user.NewHandler(userService)
	routeHandler := route.NewHandler(routeService)
	boardHandler := board.NewHandler(boardService)
	likeHandler := like.NewHandler(likeService)
	commentHandler := comment.NewHandler(commentService)
	tripHandler := trip.NewHandler(tripService)

	r := router.NewRouter(logger, redisProvider, cfg.CORSOrigins())

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterUserRoutes(userHandler)
	r.RegisterRouteRoutes(routeHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterLikeRoutes(likeHandler)
	r.RegisterCommentRoutes(commentHandler)
	r.RegisterTripRoutes(tripHandler)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
