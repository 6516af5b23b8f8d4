package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Jeffry-N/Beiruti-Fade/internal/config"
	"github.com/Jeffry-N/Beiruti-Fade/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedServices(db)

	return db
}

// seedServices fills the service catalog on first boot so the booking flow is
// usable out of the box.
func seedServices(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	services := []models.Service{
		{Name: "Classic Cut", Description: "Scissor cut with hot towel finish", Price: 25},
		{Name: "Beiruti Fade", Description: "Skin fade, house specialty", Price: 30},
		{Name: "Beard Trim", Description: "Shape-up with razor lining", Price: 15},
		{Name: "Cut & Beard", Description: "Full service, cut plus beard", Price: 40},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Printf("failed to seed services: %v", err)
	}
}
