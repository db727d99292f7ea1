// db/postgres.go
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/model"
)

// NewPostgres opens the connection pool and migrates the schema. The pool is
// created once at startup and shared by all requests.
func NewPostgres(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := gdb.AutoMigrate(
		&model.Album{},
		&model.Song{},
		&model.User{},
		&model.Authentication{},
		&model.Playlist{},
		&model.PlaylistSong{},
		&model.PlaylistActivity{},
		&model.Collaboration{},
		&model.UserAlbumLike{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return gdb, nil
}

// ClosePostgres closes the underlying connection pool.
func ClosePostgres(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Error("Error retrieving Postgres connection for close")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection")
	} else {
		logger.Info("Postgres connection closed successfully")
	}
}
