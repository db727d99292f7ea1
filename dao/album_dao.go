// dao/album_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmusic-api/openmusic/audit"
	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/model"
)

// IAlbumDAO is the persistence contract for albums and album likes.
type IAlbumDAO interface {
	CreateAlbum(ctx context.Context, payload model.AlbumPayload) (string, error)
	GetAlbumByID(ctx context.Context, id string) (*model.Album, error)
	UpdateAlbum(ctx context.Context, id string, payload model.AlbumPayload) error
	DeleteAlbum(ctx context.Context, id string) error
	SetAlbumCover(ctx context.Context, id, filename string) error
	AddLike(ctx context.Context, userID, albumID string) error
	DeleteLike(ctx context.Context, userID, albumID string) error
	CountLikes(ctx context.Context, albumID string) (int64, error)
}

type AlbumDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewAlbumDAO(db *gorm.DB, auditService audit.Service) *AlbumDAO {
	return &AlbumDAO{db: db, auditService: auditService}
}

func (dao *AlbumDAO) CreateAlbum(ctx context.Context, payload model.AlbumPayload) (string, error) {
	album := model.Album{
		ID:   uuid.New().String(),
		Name: payload.Name,
		Year: payload.Year,
	}
	if err := dao.db.WithContext(ctx).Create(&album).Error; err != nil {
		return "", fmt.Errorf("failed to create album: %w", err)
	}
	logChange(ctx, dao.auditService, "", "create", "album", album.ID)
	return album.ID, nil
}

func (dao *AlbumDAO) GetAlbumByID(ctx context.Context, id string) (*model.Album, error) {
	var album model.Album
	err := dao.db.WithContext(ctx).First(&album, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, om_errors.ErrAlbumNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	return &album, nil
}

func (dao *AlbumDAO) UpdateAlbum(ctx context.Context, id string, payload model.AlbumPayload) error {
	result := dao.db.WithContext(ctx).
		Model(&model.Album{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": payload.Name, "year": payload.Year})
	if result.Error != nil {
		return fmt.Errorf("failed to update album: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrAlbumNotFound
	}
	logChange(ctx, dao.auditService, "", "update", "album", id)
	return nil
}

func (dao *AlbumDAO) DeleteAlbum(ctx context.Context, id string) error {
	result := dao.db.WithContext(ctx).Delete(&model.Album{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete album: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrAlbumNotFound
	}
	logChange(ctx, dao.auditService, "", "delete", "album", id)
	return nil
}

func (dao *AlbumDAO) SetAlbumCover(ctx context.Context, id, filename string) error {
	result := dao.db.WithContext(ctx).
		Model(&model.Album{}).
		Where("id = ?", id).
		Update("cover", filename)
	if result.Error != nil {
		return fmt.Errorf("failed to set album cover: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrAlbumNotFound
	}
	logChange(ctx, dao.auditService, "", "update", "album", id)
	return nil
}

// AddLike inserts a like row. The unique index on (user_id, album_id) turns
// concurrent duplicates into a conflict rather than a second row.
func (dao *AlbumDAO) AddLike(ctx context.Context, userID, albumID string) error {
	like := model.UserAlbumLike{
		ID:      uuid.New().String(),
		UserID:  userID,
		AlbumID: albumID,
	}
	err := dao.db.WithContext(ctx).Create(&like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return om_errors.ErrAlbumAlreadyLiked
	} else if err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	logChange(ctx, dao.auditService, userID, "like", "album", albumID)
	return nil
}

func (dao *AlbumDAO) DeleteLike(ctx context.Context, userID, albumID string) error {
	result := dao.db.WithContext(ctx).
		Where("user_id = ? AND album_id = ?", userID, albumID).
		Delete(&model.UserAlbumLike{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrLikeNotFound
	}
	logChange(ctx, dao.auditService, userID, "unlike", "album", albumID)
	return nil
}

func (dao *AlbumDAO) CountLikes(ctx context.Context, albumID string) (int64, error) {
	var count int64
	err := dao.db.WithContext(ctx).
		Model(&model.UserAlbumLike{}).
		Where("album_id = ?", albumID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
