package config

import (
	"restaurant-management-api/logger"
	"restaurant-management-api/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts the built-in sample dataset into empty tables so a fresh
// install starts with a usable card and order board.
func Seed(db *gorm.DB) {
	var count int64

	db.Model(&models.Menu{}).Count(&count)
	if count == 0 {
		menus := models.SampleMenus()
		dishes := models.SampleDishes()
		drinks := models.SampleDrinks()
		db.Create(&menus)
		db.Create(&dishes)
		db.Create(&drinks)
	}

	db.Model(&models.Order{}).Count(&count)
	if count == 0 {
		orders := models.SampleOrders()
		db.Create(&orders)
	}

	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		seedUsers(db)
	}
}

func seedUsers(db *gorm.DB) {
	password := getEnv("SEED_USER_PASSWORD", "changeme")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.L().Warn("failed to hash seed password, skipping user seed", zap.Error(err))
		return
	}

	admin := models.User{
		Name:         "Admin",
		Email:        "admin@bellaitalia.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Active:       true,
	}
	db.Create(&admin)

	for _, u := range models.SampleUsers() {
		u.PasswordHash = string(hash)
		db.Create(&u)
	}
	logger.L().Info("seeded staff accounts", zap.String("admin", admin.Email))
}
