package config

import (
	"os"

	"restaurant-management-api/logger"
	"restaurant-management-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens, read from env or fallback
var JWTSecret []byte

type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	AppEnv    string
}

// Load reads the environment (with optional .env file) into a Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "restaurant.db"),
		JWTSecret: getEnv("JWT_SECRET", "bella_italia_super_secret_2025"),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
	JWTSecret = []byte(cfg.JWTSecret)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database, migrates the schema and seeds the
// built-in sample data when the relevant tables are empty.
func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		logger.L().Fatal("failed to migrate database", zap.Error(err))
	}

	Seed(DB)
	logger.L().Info("database connected and migrated", zap.String("path", path))
}

// Migrate applies the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Menu{},
		&models.Dish{},
		&models.Drink{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
}
