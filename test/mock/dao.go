// test/mock/dao.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openmusic-api/openmusic/model"
)

// MockAlbumDAO is a mock implementation of dao.IAlbumDAO
type MockAlbumDAO struct {
	mock.Mock
}

func (m *MockAlbumDAO) CreateAlbum(ctx context.Context, payload model.AlbumPayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func (m *MockAlbumDAO) GetAlbumByID(ctx context.Context, id string) (*model.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Album), args.Error(1)
}

func (m *MockAlbumDAO) UpdateAlbum(ctx context.Context, id string, payload model.AlbumPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockAlbumDAO) DeleteAlbum(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlbumDAO) SetAlbumCover(ctx context.Context, id, filename string) error {
	args := m.Called(ctx, id, filename)
	return args.Error(0)
}

func (m *MockAlbumDAO) AddLike(ctx context.Context, userID, albumID string) error {
	args := m.Called(ctx, userID, albumID)
	return args.Error(0)
}

func (m *MockAlbumDAO) DeleteLike(ctx context.Context, userID, albumID string) error {
	args := m.Called(ctx, userID, albumID)
	return args.Error(0)
}

func (m *MockAlbumDAO) CountLikes(ctx context.Context, albumID string) (int64, error) {
	args := m.Called(ctx, albumID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSongDAO is a mock implementation of dao.ISongDAO
type MockSongDAO struct {
	mock.Mock
}

func (m *MockSongDAO) CreateSong(ctx context.Context, payload model.SongPayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func (m *MockSongDAO) GetSongByID(ctx context.Context, id string) (*model.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Song), args.Error(1)
}

func (m *MockSongDAO) UpdateSong(ctx context.Context, id string, payload model.SongPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockSongDAO) DeleteSong(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongDAO) ListSongs(ctx context.Context, title, performer string) ([]model.SongSummary, error) {
	args := m.Called(ctx, title, performer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SongSummary), args.Error(1)
}

func (m *MockSongDAO) GetSongsByAlbumID(ctx context.Context, albumID string) ([]model.SongSummary, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SongSummary), args.Error(1)
}

func (m *MockSongDAO) GetSongsOnPlaylist(ctx context.Context, playlistID string) ([]model.SongSummary, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SongSummary), args.Error(1)
}

func (m *MockSongDAO) VerifySongExists(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserDAO is a mock implementation of dao.IUserDAO
type MockUserDAO struct {
	mock.Mock
}

func (m *MockUserDAO) CreateUser(ctx context.Context, username, passwordHash, fullname string) (string, error) {
	args := m.Called(ctx, username, passwordHash, fullname)
	return args.String(0), args.Error(1)
}

func (m *MockUserDAO) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserDAO) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockAuthenticationDAO is a mock implementation of dao.IAuthenticationDAO
type MockAuthenticationDAO struct {
	mock.Mock
}

func (m *MockAuthenticationDAO) AddToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthenticationDAO) VerifyToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthenticationDAO) DeleteToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockPlaylistDAO is a mock implementation of dao.IPlaylistDAO
type MockPlaylistDAO struct {
	mock.Mock
}

func (m *MockPlaylistDAO) CreatePlaylist(ctx context.Context, name, owner string) (string, error) {
	args := m.Called(ctx, name, owner)
	return args.String(0), args.Error(1)
}

func (m *MockPlaylistDAO) GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistDAO) DeletePlaylist(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistDAO) ListPlaylistsForUser(ctx context.Context, userID string) ([]model.PlaylistSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PlaylistSummary), args.Error(1)
}

func (m *MockPlaylistDAO) AddPlaylistSong(ctx context.Context, playlistID, songID string) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *MockPlaylistDAO) DeletePlaylistSong(ctx context.Context, playlistID, songID string) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *MockPlaylistDAO) AddActivity(ctx context.Context, playlistID, songID, userID, action string) error {
	args := m.Called(ctx, playlistID, songID, userID, action)
	return args.Error(0)
}

func (m *MockPlaylistDAO) ListActivities(ctx context.Context, playlistID string) ([]model.ActivityEntry, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityEntry), args.Error(1)
}

// MockCollaborationDAO is a mock implementation of dao.ICollaborationDAO
type MockCollaborationDAO struct {
	mock.Mock
}

func (m *MockCollaborationDAO) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockCollaborationDAO) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockCollaborationDAO) HasCollaboration(ctx context.Context, playlistID, userID string) (bool, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Bool(0), args.Error(1)
}
