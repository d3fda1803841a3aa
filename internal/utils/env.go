package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv layers a .env file under the process environment. A missing file is
// normal outside local dev, so it only warrants a warning.
func LoadEnv(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file loaded, relying on process environment", zap.Error(err))
		return
	}
	logger.Info(".env file loaded")
}
