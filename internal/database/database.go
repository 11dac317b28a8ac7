package database

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gameface/web/internal/models"
	"gameface/web/internal/upload"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the single-file SQLite database and runs migrations.
// On first run the catalogue is seeded with two demo games.
func Connect(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: customLogger,
		// Map unique-index violations to gorm.ErrDuplicatedKey so the store
		// can surface name conflicts without a prior read.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	logrus.Info("Database connection established.")

	if err := db.AutoMigrate(&models.Game{}, &models.Feedback{}); err != nil {
		return nil, err
	}

	if err := seedDemoGames(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedDemoGames inserts the demo catalogue when the games table is empty.
func seedDemoGames(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demoGames := []models.Game{
		{Name: "Minecraft", Story: "Survive in a world of blocks!", BestPlayers: "Dream, Techno", Company: "Mojang", ImageFilename: upload.PlaceholderFilename},
		{Name: "Valorant", Story: "Tactical agent warfare.", BestPlayers: "TenZ, ScreaM", Company: "Riot Games", ImageFilename: upload.PlaceholderFilename},
	}
	if err := db.Create(&demoGames).Error; err != nil {
		return err
	}

	logrus.Info("Seeded demo games.")
	return nil
}
