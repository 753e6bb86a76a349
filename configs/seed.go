package configs

import (
	"log"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"golang.org/x/crypto/bcrypt"
)

// First-run admin account from env, skipped when already present.
func SeedAdmin() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "")
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// Seed the fallback category so menu items always have a home.
func SeedLookups() error {
	db := DB()

	if err := db.FirstOrCreate(&entity.Category{}, entity.Category{Slug: "default", Title: "Default Title"}).Error; err != nil {
		return err
	}

	log.Println("lookup tables seeded")
	return nil
}
