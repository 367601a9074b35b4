package db

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"
)

// SeedCars loads the fleet fixture into an empty cars table. A table that
// already has rows is left alone so reseeding is safe.
func SeedCars(conn *gorm.DB, path string) error {
	var count int64
	if err := conn.Model(&Car{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count cars: %w", err)
	}
	if count > 0 {
		log.Println("Cars table already seeded, skipping")
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var cars []Car
	if err := json.NewDecoder(file).Decode(&cars); err != nil {
		return fmt.Errorf("failed to decode car data: %w", err)
	}

	if err := conn.Create(&cars).Error; err != nil {
		return fmt.Errorf("failed to seed car data: %w", err)
	}

	log.Printf("Seeded %d cars", len(cars))
	return nil
}
