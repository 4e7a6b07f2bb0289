package config

import (
	"os"

	"bistro-api/logger"
	"bistro-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config carries all environment-driven settings. Admin credentials
// live here rather than as constants so tests can inject their own.
type Config struct {
	Port          string
	Env           string
	DBPath        string
	JWTSecret     string
	AdminMobile   string
	AdminPassword string
	CORSOrigin    string
}

// App is the active configuration, set by Load. Tests assign it directly.
var App *Config

// DB is the shared GORM handle, set by InitDB.
var DB *gorm.DB

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	App = &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		DBPath:        getEnv("DB_PATH", "bistro.db"),
		JWTSecret:     getEnv("JWT_SECRET", "bistro_super_secret_2024"),
		AdminMobile:   getEnv("ADMIN_MOBILE", "9999999999"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}
	return App
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func InitDB(cfg *Config) {
	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	)
	if err != nil {
		logger.L().Fatal("failed to migrate database", zap.Error(err))
	}

	logger.L().Info("database connected and migrated", zap.String("path", cfg.DBPath))
}
