// service/collaboration_service_test.go
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

type collaborationFixture struct {
	collaborationDAO *mock.MockCollaborationDAO
	userDAO          *mock.MockUserDAO
	playlists        *mock.MockPlaylistService
	cache            *mock.FakeCache
	svc              *service.CollaborationService
}

func newCollaborationFixture() *collaborationFixture {
	f := &collaborationFixture{
		collaborationDAO: new(mock.MockCollaborationDAO),
		userDAO:          new(mock.MockUserDAO),
		playlists:        new(mock.MockPlaylistService),
		cache:            mock.NewFakeCache(),
	}
	f.svc = service.NewCollaborationService(f.collaborationDAO, f.userDAO, f.playlists, f.cache)
	return f
}

func TestAddCollaborationInvalidatesCollaboratorListing(t *testing.T) {
	f := newCollaborationFixture()
	key := util.UserPlaylistsKey("collab-1")
	require.NoError(t, f.cache.Set(context.Background(), key, "[]"))

	payload := model.CollaborationPayload{PlaylistID: "playlist-1", UserID: "collab-1"}
	f.playlists.On("VerifyPlaylistOwner", tmock.Anything, "playlist-1", "owner-1").Return(nil)
	f.userDAO.On("GetUserByID", tmock.Anything, "collab-1").
		Return(&model.User{ID: "collab-1", Username: "bob"}, nil)
	f.collaborationDAO.On("AddCollaboration", tmock.Anything, "playlist-1", "collab-1").
		Return("collaboration-1", nil)

	collaborationID, err := f.svc.AddCollaboration(context.Background(), payload, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "collaboration-1", collaborationID)
	assert.False(t, f.cache.Contains(key))
}

func TestAddCollaborationRequiresOwner(t *testing.T) {
	f := newCollaborationFixture()

	payload := model.CollaborationPayload{PlaylistID: "playlist-1", UserID: "collab-1"}
	f.playlists.On("VerifyPlaylistOwner", tmock.Anything, "playlist-1", "collab-2").
		Return(om_errors.ErrNotPlaylistOwner)

	_, err := f.svc.AddCollaboration(context.Background(), payload, "collab-2")
	assert.ErrorIs(t, err, om_errors.ErrNotPlaylistOwner)
	f.collaborationDAO.AssertNotCalled(t, "AddCollaboration", tmock.Anything, tmock.Anything, tmock.Anything)
}

func TestAddCollaborationUnknownUser(t *testing.T) {
	f := newCollaborationFixture()

	payload := model.CollaborationPayload{PlaylistID: "playlist-1", UserID: "ghost"}
	f.playlists.On("VerifyPlaylistOwner", tmock.Anything, "playlist-1", "owner-1").Return(nil)
	f.userDAO.On("GetUserByID", tmock.Anything, "ghost").
		Return(nil, om_errors.ErrUserNotFound)

	_, err := f.svc.AddCollaboration(context.Background(), payload, "owner-1")
	assert.ErrorIs(t, err, om_errors.ErrUserNotFound)
}

func TestDeleteCollaborationMissing(t *testing.T) {
	f := newCollaborationFixture()

	payload := model.CollaborationPayload{PlaylistID: "playlist-1", UserID: "collab-1"}
	f.playlists.On("VerifyPlaylistOwner", tmock.Anything, "playlist-1", "owner-1").Return(nil)
	f.collaborationDAO.On("DeleteCollaboration", tmock.Anything, "playlist-1", "collab-1").
		Return(om_errors.ErrCollaborationNotFound)

	err := f.svc.DeleteCollaboration(context.Background(), payload, "owner-1")
	assert.ErrorIs(t, err, om_errors.ErrCollaborationNotFound)
}
