package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// MigrationRecord tracks which versioned scripts have been applied.
type MigrationRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Version   string `gorm:"uniqueIndex;not null"`
	AppliedAt time.Time
}

func (MigrationRecord) TableName() string { return "migration_records" }

type migrationScript struct {
	version string
	path    string
}

// RunMigrations applies every pending .sql script in dir, ordered by file
// name, recording each applied version. The directory may be empty; that
// is not an error.
func RunMigrations(conn *gorm.DB, dir string) error {
	if err := conn.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to prepare migration records table: %w", err)
	}

	scripts, err := loadScripts(dir)
	if err != nil {
		return err
	}

	var records []MigrationRecord
	if err := conn.Find(&records).Error; err != nil {
		return fmt.Errorf("failed to read applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(records))
	for _, record := range records {
		applied[record.Version] = true
	}

	var pending []migrationScript
	for _, script := range scripts {
		if !applied[script.version] {
			pending = append(pending, script)
		}
	}

	if len(pending) == 0 {
		log.Println("No pending migrations.")
		return nil
	}

	for _, script := range pending {
		sql, err := os.ReadFile(script.path)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", script.version, err)
		}
		err = conn.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(sql)).Error; err != nil {
				return err
			}
			return tx.Create(&MigrationRecord{Version: script.version, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", script.version, err)
		}
		log.Printf("Applied migration %s", script.version)
	}
	return nil
}

func loadScripts(dir string) ([]migrationScript, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var scripts []migrationScript
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		scripts = append(scripts, migrationScript{
			version: strings.TrimSuffix(name, ".sql"),
			path:    filepath.Join(dir, name),
		})
	}
	sort.Slice(scripts, func(i, j int) bool { return scripts[i].version < scripts[j].version })
	return scripts, nil
}
