package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"car-rental/internal/config"
)

// Connect opens the database described by cfg and verifies it with a ping,
// retrying for a while so the server survives a database that is still
// coming up (e.g. under docker compose).
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.Logging {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	var conn *gorm.DB
	for i := 0; i < 10; i++ {
		conn, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			sqlDB, dbErr := conn.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					log.Printf("Connected to %s database %q", cfg.Driver, cfg.Name)
					return conn, nil
				}
			}
		}
		log.Println("Retrying DB connection...")
		time.Sleep(3 * time.Second)
	}
	if err == nil {
		err = fmt.Errorf("database %q unreachable", cfg.Name)
	}
	return nil, err
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		return mysql.Open(dsn), nil
	case "sqlite":
		// DB_NAME is the file path; ":memory:" works for throwaway runs.
		return sqlite.Open(cfg.Name), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// Models lists every persisted entity, in an order safe for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&User{}, &Car{}, &Booking{}, &Payment{}, &Review{}}
}

// Sync derives the schema from the entity definitions. Development
// convenience only; deployments with real data use versioned migrations.
func Sync(conn *gorm.DB) error {
	return conn.AutoMigrate(Models()...)
}
