package infra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/umalmyha/inquiries/internal/config"
	"github.com/umalmyha/inquiries/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // pure Go driver registered as "sqlite"
)

const sqliteDriverName = "sqlite"

// Sqlite opens sqlite database file and migrates inquiries table
func Sqlite(ctx context.Context, cfg config.SqliteCfg) (*gorm.DB, error) {
	sqlDB, err := sql.Open(sqliteDriverName, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database - %w", err)
	}
	// sqlite allows single writer only
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("didn't get response from sqlite after sending ping request - %w", err)
	}

	db, err := gorm.Open(sqlite.Dialector{DriverName: sqliteDriverName, DSN: cfg.Path, Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to build gorm connection - %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.Inquiry{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate inquiries table - %w", err)
	}
	return db, nil
}
