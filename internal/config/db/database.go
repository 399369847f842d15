package db

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/linskybing/campus-helpdesk/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected", "host", config.DbHost, "name", config.DbName)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
