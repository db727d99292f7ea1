// service/playlist_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/model"
	"github.com/openmusic-api/openmusic/service"
	"github.com/openmusic-api/openmusic/test/mock"
	"github.com/openmusic-api/openmusic/util"
)

type playlistFixture struct {
	playlistDAO      *mock.MockPlaylistDAO
	songDAO          *mock.MockSongDAO
	userDAO          *mock.MockUserDAO
	collaborationDAO *mock.MockCollaborationDAO
	cache            *mock.FakeCache
	svc              *service.PlaylistService
}

func newPlaylistFixture() *playlistFixture {
	f := &playlistFixture{
		playlistDAO:      new(mock.MockPlaylistDAO),
		songDAO:          new(mock.MockSongDAO),
		userDAO:          new(mock.MockUserDAO),
		collaborationDAO: new(mock.MockCollaborationDAO),
		cache:            mock.NewFakeCache(),
	}
	f.svc = service.NewPlaylistService(
		f.playlistDAO,
		f.songDAO,
		f.userDAO,
		f.collaborationDAO,
		f.cache,
		util.NewNotificationService(),
		util.NewEventBus(),
	)
	return f
}

func TestVerifyPlaylistAccessOwner(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistDAO.On("GetPlaylistByID", tmock.Anything, "playlist-1").
		Return(&model.Playlist{ID: "playlist-1", Owner: "owner-1"}, nil)

	assert.NoError(t, f.svc.VerifyPlaylistAccess(context.Background(), "playlist-1", "owner-1"))
}

func TestVerifyPlaylistAccessCollaborator(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistDAO.On("GetPlaylistByID", tmock.Anything, "playlist-1").
		Return(&model.Playlist{ID: "playlist-1", Owner: "owner-1"}, nil)
	f.collaborationDAO.On("HasCollaboration", tmock.Anything, "playlist-1", "collab-1").
		Return(true, nil)

	assert.NoError(t, f.svc.VerifyPlaylistAccess(context.Background(), "playlist-1", "collab-1"))
}

func TestVerifyPlaylistAccessStranger(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistDAO.On("GetPlaylistByID", tmock.Anything, "playlist-1").
		Return(&model.Playlist{ID: "playlist-1", Owner: "owner-1"}, nil)
	f.collaborationDAO.On("HasCollaboration", tmock.Anything, "playlist-1", "stranger").
		Return(false, nil)

	err := f.svc.VerifyPlaylistAccess(context.Background(), "playlist-1", "stranger")
	assert.ErrorIs(t, err, om_errors.ErrPlaylistAccessDenied)
}

func TestVerifyPlaylistAccessMissingPlaylist(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistDAO.On("GetPlaylistByID", tmock.Anything, "missing").
		Return(nil, om_errors.ErrPlaylistNotFound)

	err := f.svc.VerifyPlaylistAccess(context.Background(), "missing", "anyone")
	assert.ErrorIs(t, err, om_errors.ErrPlaylistNotFound)
}

func TestDeletePlaylistRequiresOwner(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistDAO.On("GetPlaylistByID", tmock.Anything, "playlist-1").
		Return(&model.Playlist{ID: "playlist-1", Owner: "owner-1"}, nil)

	err := f.svc.DeletePlaylist(context.Background(), "playlist-1", "collab-1")
	assert.ErrorIs(t, err, om_errors.ErrNotPlaylistOwner)
	f.playlistDAO.AssertNotCalled(t, "DeletePlaylist", tmock.Anything, "playlist-1")
}

func TestAddPlaylistSongRecordsActivityAndInvalidates(t *testing.T) {
	f := newPlaylistFixture()
	key := util.PlaylistActivitiesKey("playlist-1")
	require.NoError(t, f.cache.Set(context.Background(), key, "[]"))

	f.playlistDAO.On("GetPlaylistByID", tmock.Anything, "playlist-1").
		Return(&model.Playlist{ID: "playlist-1", Owner: "owner-1"}, nil)
	f.songDAO.On("VerifySongExists", tmock.Anything, "song-1").Return(nil)
	f.playlistDAO.On("AddPlaylistSong", tmock.Anything, "playlist-1", "song-1").Return(nil)
	f.playlistDAO.On("AddActivity", tmock.Anything, "playlist-1", "song-1", "owner-1", "add").Return(nil)

	require.NoError(t, f.svc.AddPlaylistSong(context.Background(), "playlist-1", "song-1", "owner-1"))
	assert.False(t, f.cache.Contains(key))
	f.playlistDAO.AssertExpectations(t)
}

func TestAddPlaylistSongUnknownSong(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistDAO.On("GetPlaylistByID", tmock.Anything, "playlist-1").
		Return(&model.Playlist{ID: "playlist-1", Owner: "owner-1"}, nil)
	f.songDAO.On("VerifySongExists", tmock.Anything, "missing").
		Return(om_errors.ErrSongNotFound)

	err := f.svc.AddPlaylistSong(context.Background(), "playlist-1", "missing", "owner-1")
	assert.ErrorIs(t, err, om_errors.ErrSongNotFound)
	f.playlistDAO.AssertNotCalled(t, "AddPlaylistSong", tmock.Anything, "playlist-1", "missing")
}

func TestGetPlaylistsCacheAside(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistDAO.On("ListPlaylistsForUser", tmock.Anything, "user-1").
		Return([]model.PlaylistSummary{{ID: "playlist-1", Name: "Favorites", Username: "alice"}}, nil).Once()

	playlists, fromCache, err := f.svc.GetPlaylists(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, fromCache)
	require.Len(t, playlists, 1)

	playlists, fromCache, err = f.svc.GetPlaylists(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, fromCache)
	require.Len(t, playlists, 1)
	f.playlistDAO.AssertExpectations(t)
}

func TestGetPlaylistSongsDeniedForStranger(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistDAO.On("GetPlaylistByID", tmock.Anything, "playlist-1").
		Return(&model.Playlist{ID: "playlist-1", Owner: "owner-1"}, nil)
	f.collaborationDAO.On("HasCollaboration", tmock.Anything, "playlist-1", "stranger").
		Return(false, nil)

	_, err := f.svc.GetPlaylistSongs(context.Background(), "playlist-1", "stranger")
	assert.ErrorIs(t, err, om_errors.ErrPlaylistAccessDenied)
}

func TestGetPlaylistActivitiesChecksAccessBeforeCache(t *testing.T) {
	f := newPlaylistFixture()
	key := util.PlaylistActivitiesKey("playlist-1")
	require.NoError(t, f.cache.Set(context.Background(), key, "[]"))

	f.playlistDAO.On("GetPlaylistByID", tmock.Anything, "playlist-1").
		Return(&model.Playlist{ID: "playlist-1", Owner: "owner-1"}, nil)
	f.collaborationDAO.On("HasCollaboration", tmock.Anything, "playlist-1", "stranger").
		Return(false, nil)

	_, _, err := f.svc.GetPlaylistActivities(context.Background(), "playlist-1", "stranger")
	assert.ErrorIs(t, err, om_errors.ErrPlaylistAccessDenied)
}
