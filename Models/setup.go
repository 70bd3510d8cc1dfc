package Models

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var connection *gorm.DB
	var err error

	// MySQL when a DSN is configured, local sqlite file otherwise.
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		connection, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		dbPath := os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = "database.db"
		}
		connection, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	// 1. Base entities with no dependencies
	DB.AutoMigrate(
		&User{},
		&TaskTemplate{},
		&CustomTask{},
	)

	// 2. Records keyed against users and task ids
	DB.AutoMigrate(
		&CompletionItem{},
		&ShiftReport{},
		&AlertOverride{},
		&TaskRemoval{},
		&EvidencePhoto{},
	)
}
