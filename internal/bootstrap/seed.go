package bootstrap

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.UserProfile{},
		&entity.Trainer{},
		&entity.Nutritionist{},
		&entity.WorkoutPlan{},
		&entity.DietPlan{},
		&entity.BodyMetric{},
		&entity.Subscription{},
	)
}

func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", "admin@fitlink.app").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := "Administrator"
	adminUser := entity.User{
		Email:        "admin@fitlink.app",
		Name:         &name,
		PasswordHash: string(hashedPasswordBytes),
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	log.Println("   Email: admin@fitlink.app")
	log.Println("   Password: admin123")

	return nil
}
