package app

import (
	"strings"
	"time"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/utils"
)

type Config struct {
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	// FoldMealNames switches meal-name matching to case-insensitive, the
	// way user-email lookup always behaves. Default is exact matching.
	FoldMealNames bool
	Port          string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	mealNameMatch := strings.ToLower(utils.GetEnv("MEAL_NAME_MATCH", "exact", log))
	port := utils.GetEnv("PORT", "8080", log)
	return Config{
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		FoldMealNames:  mealNameMatch == "fold",
		Port:           port,
	}
}
