package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// GormConnect opens the configured database. Foreign keys are not created
// during migration so deleting a customer leaves its payments in place.
func (db *DB) GormConnect() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
	gormConfig.DisableForeignKeyConstraintWhenMigrating = true

	switch db.DRIVER {
	case DriverSQLite:
		return gorm.Open(sqlite.Open(db.SQLitePath), gormConfig)
	case DriverPostgres, "":
		return gorm.Open(postgres.Open(db.DSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", db.DRIVER)
	}
}

func (db *DB) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		db.HOST, db.USER, db.PASSWORD, db.NAME, db.PORT, db.SSLMODE,
	)
}
