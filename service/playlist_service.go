package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/openmusic-api/openmusic/dao"
	om_errors "github.com/openmusic-api/openmusic/errors"
	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/model"
	"github.com/openmusic-api/openmusic/util"
)

// PlaylistService handles business logic for playlists, their songs and the
// activity log.
type PlaylistService struct {
	playlistDAO      dao.IPlaylistDAO
	songDAO          dao.ISongDAO
	userDAO          dao.IUserDAO
	collaborationDAO dao.ICollaborationDAO
	cache            util.Cacher
	notificationSvc  *util.NotificationService
	eventBus         *util.EventBus
}

func NewPlaylistService(
	playlistDAO dao.IPlaylistDAO,
	songDAO dao.ISongDAO,
	userDAO dao.IUserDAO,
	collaborationDAO dao.ICollaborationDAO,
	cache util.Cacher,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *PlaylistService {
	service := &PlaylistService{
		playlistDAO:      playlistDAO,
		songDAO:          songDAO,
		userDAO:          userDAO,
		collaborationDAO: collaborationDAO,
		cache:            cache,
		notificationSvc:  notificationSvc,
		eventBus:         eventBus,
	}

	if eventBus != nil {
		eventBus.Subscribe("playlist.deleted", service.handlePlaylistDeleted)
	}

	return service
}

func (s *PlaylistService) handlePlaylistDeleted(ctx context.Context, event util.Event) error {
	playlist, ok := event.Payload.(model.Playlist)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	return s.notificationSvc.NotifyPlaylistChange(ctx, "deleted", playlist)
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, name, owner string) (string, error) {
	playlistID, err := s.playlistDAO.CreatePlaylist(ctx, name, owner)
	if err != nil {
		logger.Error("Error creating playlist", zap.Error(err))
		return "", err
	}

	s.invalidate(ctx, util.UserPlaylistsKey(owner))
	logger.Info("Playlist created", zap.String("playlistID", playlistID), zap.String("owner", owner))
	return playlistID, nil
}

// GetPlaylists lists the playlists the user owns or collaborates on, served
// through the cache-aside path. The boolean reports a cache hit.
func (s *PlaylistService) GetPlaylists(ctx context.Context, userID string) ([]model.PlaylistSummary, bool, error) {
	return util.Remember(ctx, s.cache, util.UserPlaylistsKey(userID),
		func(ctx context.Context) ([]model.PlaylistSummary, error) {
			return s.playlistDAO.ListPlaylistsForUser(ctx, userID)
		})
}

// DeletePlaylist removes the playlist. Only the owner may delete.
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, userID string) error {
	if err := s.VerifyPlaylistOwner(ctx, playlistID, userID); err != nil {
		return err
	}

	playlist, err := s.playlistDAO.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return err
	}

	if err := s.playlistDAO.DeletePlaylist(ctx, playlistID); err != nil {
		return err
	}

	s.invalidate(ctx,
		util.UserPlaylistsKey(userID),
		util.PlaylistActivitiesKey(playlistID),
	)
	s.eventBus.Publish(ctx, "playlist.deleted", *playlist)
	return nil
}

// AddPlaylistSong appends a song and records the activity. Owner and
// collaborators may add.
func (s *PlaylistService) AddPlaylistSong(ctx context.Context, playlistID, songID, userID string) error {
	if err := s.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.songDAO.VerifySongExists(ctx, songID); err != nil {
		return err
	}
	if err := s.playlistDAO.AddPlaylistSong(ctx, playlistID, songID); err != nil {
		return err
	}

	if err := s.playlistDAO.AddActivity(ctx, playlistID, songID, userID, "add"); err != nil {
		logger.Warn("Failed to record playlist activity", zap.String("playlistID", playlistID), zap.Error(err))
	}
	s.invalidate(ctx, util.PlaylistActivitiesKey(playlistID))
	return nil
}

// GetPlaylistSongs returns the playlist with its owner's username and songs.
func (s *PlaylistService) GetPlaylistSongs(ctx context.Context, playlistID, userID string) (*model.PlaylistDetail, error) {
	if err := s.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		return nil, err
	}

	playlist, err := s.playlistDAO.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	owner, err := s.userDAO.GetUserByID(ctx, playlist.Owner)
	if err != nil {
		return nil, err
	}

	songs, err := s.songDAO.GetSongsOnPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	return &model.PlaylistDetail{
		ID:       playlist.ID,
		Name:     playlist.Name,
		Username: owner.Username,
		Songs:    songs,
	}, nil
}

// DeletePlaylistSong removes a song and records the activity. Owner and
// collaborators may remove.
func (s *PlaylistService) DeletePlaylistSong(ctx context.Context, playlistID, songID, userID string) error {
	if err := s.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.playlistDAO.DeletePlaylistSong(ctx, playlistID, songID); err != nil {
		return err
	}

	if err := s.playlistDAO.AddActivity(ctx, playlistID, songID, userID, "delete"); err != nil {
		logger.Warn("Failed to record playlist activity", zap.String("playlistID", playlistID), zap.Error(err))
	}
	s.invalidate(ctx, util.PlaylistActivitiesKey(playlistID))
	return nil
}

// GetPlaylistActivities returns the add/delete history in chronological
// order, served through the cache-aside path.
func (s *PlaylistService) GetPlaylistActivities(ctx context.Context, playlistID, userID string) ([]model.ActivityEntry, bool, error) {
	if err := s.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		return nil, false, err
	}

	return util.Remember(ctx, s.cache, util.PlaylistActivitiesKey(playlistID),
		func(ctx context.Context) ([]model.ActivityEntry, error) {
			return s.playlistDAO.ListActivities(ctx, playlistID)
		})
}

// VerifyPlaylistOwner fails with a not-found error when the playlist does
// not exist, and a forbidden error when it exists but the user is not its
// owner.
func (s *PlaylistService) VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error {
	playlist, err := s.playlistDAO.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.Owner != userID {
		return om_errors.ErrNotPlaylistOwner
	}
	return nil
}

// VerifyPlaylistAccess grants the owner and registered collaborators.
func (s *PlaylistService) VerifyPlaylistAccess(ctx context.Context, playlistID, userID string) error {
	err := s.VerifyPlaylistOwner(ctx, playlistID, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, om_errors.ErrNotPlaylistOwner) {
		return err
	}

	collaborates, err := s.collaborationDAO.HasCollaboration(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	if !collaborates {
		return om_errors.ErrPlaylistAccessDenied
	}
	return nil
}

func (s *PlaylistService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
