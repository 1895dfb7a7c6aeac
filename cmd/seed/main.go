package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/serenitywellness/spa-manager/internal/config"
	dbpkg "github.com/serenitywellness/spa-manager/internal/db"
	"github.com/serenitywellness/spa-manager/internal/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var count int64
	if err := db.Model(&models.Treatment{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to inspect database: %v", err)
	}
	if count > 0 {
		log.Println("Database already contains data, skipping seed")
		return
	}

	if err := seed(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seed data inserted")
}

func seed(db *gorm.DB) error {
	treatments := []models.Treatment{
		{ID: uuid.NewString(), Name: "Swedish Massage", Description: "Classic full-body relaxation massage", DurationMinutes: 60, Price: 80, IsActive: true},
		{ID: uuid.NewString(), Name: "Deep Tissue Massage", Description: "Firm pressure for chronic tension", DurationMinutes: 90, Price: 110, IsActive: true},
		{ID: uuid.NewString(), Name: "Hydrating Facial", Description: "Moisture-boosting facial treatment", DurationMinutes: 45, Price: 65, IsActive: true},
	}
	if err := db.Create(&treatments).Error; err != nil {
		return err
	}

	rooms := []models.Room{
		{ID: uuid.NewString(), Name: "Suite A", Capacity: 2, Description: "Couples suite with steam shower", Status: models.RoomStatusAvailable},
		{ID: uuid.NewString(), Name: "Suite B", Capacity: 1, Status: models.RoomStatusAvailable},
		{ID: uuid.NewString(), Name: "Treatment Room 1", Capacity: 1, Status: models.RoomStatusAvailable},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	staff := []models.Personnel{
		{ID: uuid.NewString(), Name: "Maria Lindholm", Role: "Massage Therapist", Email: "maria@serenitywellness.example", Phone: "+1-555-0101", IsActive: true},
		{ID: uuid.NewString(), Name: "Jonas Berg", Role: "Esthetician", Email: "jonas@serenitywellness.example", IsActive: true},
	}
	if err := db.Create(&staff).Error; err != nil {
		return err
	}

	// Mon-Fri 09:00-17:00 for everyone, weekends off.
	for _, person := range staff {
		for i, day := range models.Weekdays {
			wh := models.WorkingHours{
				PersonnelID: person.ID,
				DayOfWeek:   day,
				IsWorking:   i < 5,
			}
			if wh.IsWorking {
				wh.StartTime = "09:00"
				wh.EndTime = "17:00"
			}
			if err := db.Create(&wh).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
