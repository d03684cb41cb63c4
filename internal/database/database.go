package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/progressbuddy/progress-buddy/internal/config"
	"github.com/progressbuddy/progress-buddy/internal/models"
	"github.com/progressbuddy/progress-buddy/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB opens the SQLite database file and runs migrations. It must
// complete before any router is attached; a failure here is fatal for the
// process.
func ConnectDB(cfg *config.Config) (*gorm.DB, error) {
	if err := ensureDir(cfg.DBPath); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Activity{}, &models.Log{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logger.Log.WithField("path", cfg.DBPath).Info("Database initialized successfully")
	return db, nil
}

// ensureDir creates the parent directory for the SQLite file if needed.
func ensureDir(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
