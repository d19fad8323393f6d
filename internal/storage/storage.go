package storage

import (
	"os"
	"sync"
	"time"

	"spacehub-backend/internal/config"
	"spacehub-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db   *gorm.DB
	once sync.Once
)

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	gormDb, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
		// duplicate-key violations must surface as gorm.ErrDuplicatedKey
		// so find-or-create can recover from concurrent inserts
		TranslateError: true,
		Logger:         gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDb, err := gormDb.DB()
	if err != nil {
		log.Error("Failed to get underlying sql.DB", "error", err)
		os.Exit(1)
	}

	sqlDb.SetMaxOpenConns(20)
	sqlDb.SetMaxIdleConns(5)
	sqlDb.SetConnMaxLifetime(time.Hour)

	db = gormDb
}
