// dao/playlist_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmusic-api/openmusic/audit"
	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/model"
)

// IPlaylistDAO is the persistence contract for playlists, playlist songs and
// the activity log.
type IPlaylistDAO interface {
	CreatePlaylist(ctx context.Context, name, owner string) (string, error)
	GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, id string) error
	ListPlaylistsForUser(ctx context.Context, userID string) ([]model.PlaylistSummary, error)
	AddPlaylistSong(ctx context.Context, playlistID, songID string) error
	DeletePlaylistSong(ctx context.Context, playlistID, songID string) error
	AddActivity(ctx context.Context, playlistID, songID, userID, action string) error
	ListActivities(ctx context.Context, playlistID string) ([]model.ActivityEntry, error)
}

type PlaylistDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewPlaylistDAO(db *gorm.DB, auditService audit.Service) *PlaylistDAO {
	return &PlaylistDAO{db: db, auditService: auditService}
}

func (dao *PlaylistDAO) CreatePlaylist(ctx context.Context, name, owner string) (string, error) {
	playlist := model.Playlist{
		ID:    uuid.New().String(),
		Name:  name,
		Owner: owner,
	}
	if err := dao.db.WithContext(ctx).Create(&playlist).Error; err != nil {
		return "", fmt.Errorf("failed to create playlist: %w", err)
	}
	logChange(ctx, dao.auditService, owner, "create", "playlist", playlist.ID)
	return playlist.ID, nil
}

func (dao *PlaylistDAO) GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error) {
	var playlist model.Playlist
	err := dao.db.WithContext(ctx).First(&playlist, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, om_errors.ErrPlaylistNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	return &playlist, nil
}

func (dao *PlaylistDAO) DeletePlaylist(ctx context.Context, id string) error {
	result := dao.db.WithContext(ctx).Delete(&model.Playlist{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete playlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrPlaylistNotFound
	}
	logChange(ctx, dao.auditService, "", "delete", "playlist", id)
	return nil
}

// ListPlaylistsForUser returns the playlists the user owns plus the ones
// shared with them through a collaboration.
func (dao *PlaylistDAO) ListPlaylistsForUser(ctx context.Context, userID string) ([]model.PlaylistSummary, error) {
	playlists := []model.PlaylistSummary{}
	err := dao.db.WithContext(ctx).
		Table("playlists").
		Select("DISTINCT playlists.id, playlists.name, users.username").
		Joins("JOIN users ON users.id = playlists.owner").
		Joins("LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id").
		Where("playlists.owner = ? OR collaborations.user_id = ?", userID, userID).
		Scan(&playlists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	return playlists, nil
}

func (dao *PlaylistDAO) AddPlaylistSong(ctx context.Context, playlistID, songID string) error {
	entry := model.PlaylistSong{
		ID:         uuid.New().String(),
		PlaylistID: playlistID,
		SongID:     songID,
	}
	err := dao.db.WithContext(ctx).Create(&entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return om_errors.ErrSongAlreadyInPlaylist
	} else if err != nil {
		return fmt.Errorf("failed to add playlist song: %w", err)
	}
	return nil
}

func (dao *PlaylistDAO) DeletePlaylistSong(ctx context.Context, playlistID, songID string) error {
	result := dao.db.WithContext(ctx).
		Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		Delete(&model.PlaylistSong{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete playlist song: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrSongNotInPlaylist
	}
	return nil
}

func (dao *PlaylistDAO) AddActivity(ctx context.Context, playlistID, songID, userID, action string) error {
	activity := model.PlaylistActivity{
		ID:         uuid.New().String(),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
		Time:       time.Now(),
	}
	if err := dao.db.WithContext(ctx).Create(&activity).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	logChange(ctx, dao.auditService, userID, action, "playlist_song", playlistID)
	return nil
}

func (dao *PlaylistDAO) ListActivities(ctx context.Context, playlistID string) ([]model.ActivityEntry, error) {
	activities := []model.ActivityEntry{}
	err := dao.db.WithContext(ctx).
		Table("playlist_activities").
		Select("users.username, songs.title, playlist_activities.action, playlist_activities.time").
		Joins("JOIN users ON users.id = playlist_activities.user_id").
		Joins("JOIN songs ON songs.id = playlist_activities.song_id").
		Where("playlist_activities.playlist_id = ?", playlistID).
		Order("playlist_activities.time ASC").
		Scan(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
