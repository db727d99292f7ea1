// dao/song_dao.go
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

// ISongDAO is the persistence contract for songs.
type ISongDAO interface {
	CreateSong(ctx context.Context, payload model.SongPayload) (string, error)
	GetSongByID(ctx context.Context, id string) (*model.Song, error)
	UpdateSong(ctx context.Context, id string, payload model.SongPayload) error
	DeleteSong(ctx context.Context, id string) error
	ListSongs(ctx context.Context, title, performer string) ([]model.SongSummary, error)
	GetSongsByAlbumID(ctx context.Context, albumID string) ([]model.SongSummary, error)
	GetSongsOnPlaylist(ctx context.Context, playlistID string) ([]model.SongSummary, error)
	VerifySongExists(ctx context.Context, id string) error
}

type SongDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewSongDAO(db *gorm.DB, auditService audit.Service) *SongDAO {
	return &SongDAO{db: db, auditService: auditService}
}

func (dao *SongDAO) CreateSong(ctx context.Context, payload model.SongPayload) (string, error) {
	song := model.Song{
		ID:        uuid.New().String(),
		Title:     payload.Title,
		Year:      payload.Year,
		Genre:     payload.Genre,
		Performer: payload.Performer,
		Duration:  payload.Duration,
		AlbumID:   payload.AlbumID,
	}
	if err := dao.db.WithContext(ctx).Create(&song).Error; err != nil {
		return "", fmt.Errorf("failed to create song: %w", err)
	}
	logChange(ctx, dao.auditService, "", "create", "song", song.ID)
	return song.ID, nil
}

func (dao *SongDAO) GetSongByID(ctx context.Context, id string) (*model.Song, error) {
	var song model.Song
	err := dao.db.WithContext(ctx).First(&song, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, om_errors.ErrSongNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get song: %w", err)
	}
	return &song, nil
}

func (dao *SongDAO) UpdateSong(ctx context.Context, id string, payload model.SongPayload) error {
	result := dao.db.WithContext(ctx).
		Model(&model.Song{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     payload.Title,
			"year":      payload.Year,
			"genre":     payload.Genre,
			"performer": payload.Performer,
			"duration":  payload.Duration,
			"album_id":  payload.AlbumID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update song: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrSongNotFound
	}
	logChange(ctx, dao.auditService, "", "update", "song", id)
	return nil
}

func (dao *SongDAO) DeleteSong(ctx context.Context, id string) error {
	result := dao.db.WithContext(ctx).Delete(&model.Song{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete song: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrSongNotFound
	}
	logChange(ctx, dao.auditService, "", "delete", "song", id)
	return nil
}

// ListSongs returns song summaries, optionally filtered by partial title and
// performer matches.
func (dao *SongDAO) ListSongs(ctx context.Context, title, performer string) ([]model.SongSummary, error) {
	query := dao.db.WithContext(ctx).Model(&model.Song{})
	if title != "" {
		query = query.Where("title ILIKE ?", "%"+title+"%")
	}
	if performer != "" {
		query = query.Where("performer ILIKE ?", "%"+performer+"%")
	}

	songs := []model.SongSummary{}
	if err := query.Select("id, title, performer").Scan(&songs).Error; err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	return songs, nil
}

func (dao *SongDAO) GetSongsByAlbumID(ctx context.Context, albumID string) ([]model.SongSummary, error) {
	songs := []model.SongSummary{}
	err := dao.db.WithContext(ctx).
		Model(&model.Song{}).
		Select("id, title, performer").
		Where("album_id = ?", albumID).
		Scan(&songs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get album songs: %w", err)
	}
	return songs, nil
}

func (dao *SongDAO) GetSongsOnPlaylist(ctx context.Context, playlistID string) ([]model.SongSummary, error) {
	songs := []model.SongSummary{}
	err := dao.db.WithContext(ctx).
		Table("songs").
		Select("songs.id, songs.title, songs.performer").
		Joins("JOIN playlist_songs ON playlist_songs.song_id = songs.id").
		Where("playlist_songs.playlist_id = ?", playlistID).
		Scan(&songs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist songs: %w", err)
	}
	return songs, nil
}

func (dao *SongDAO) VerifySongExists(ctx context.Context, id string) error {
	var song model.Song
	err := dao.db.WithContext(ctx).Select("id").First(&song, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return om_errors.ErrSongNotFound
	} else if err != nil {
		return fmt.Errorf("failed to verify song: %w", err)
	}
	return nil
}
