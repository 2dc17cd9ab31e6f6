package db

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"trainingdiary/internal/db/migrations"
)

// NewMySQL returns a connected GORM DB instance.
// TranslateError makes unique violations surface as gorm.ErrDuplicatedKey.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// MigrateMySQL applies the embedded goose migrations. With reset set, every
// migration is rolled back first, which drops all tables.
func MigrateMySQL(ctx context.Context, gormDB *gorm.DB, reset bool) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if reset {
		if err := goose.ResetContext(ctx, sqlDB, "."); err != nil {
			return fmt.Errorf("reset migrations: %w", err)
		}
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
