// test/mock/service.go
package mock

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/openmusic-api/openmusic/model"
)

// MockAlbumService is a mock implementation of service.IAlbumService
type MockAlbumService struct {
	mock.Mock
}

func (m *MockAlbumService) CreateAlbum(ctx context.Context, payload model.AlbumPayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func (m *MockAlbumService) GetAlbum(ctx context.Context, id string) (*model.AlbumDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AlbumDetail), args.Error(1)
}

func (m *MockAlbumService) UpdateAlbum(ctx context.Context, id string, payload model.AlbumPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockAlbumService) DeleteAlbum(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlbumService) UploadCover(ctx context.Context, id string, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, id, file)
	return args.String(0), args.Error(1)
}

func (m *MockAlbumService) CoverFilePath(filename string) (string, error) {
	args := m.Called(filename)
	return args.String(0), args.Error(1)
}

func (m *MockAlbumService) LikeAlbum(ctx context.Context, userID, albumID string) error {
	args := m.Called(ctx, userID, albumID)
	return args.Error(0)
}

func (m *MockAlbumService) UnlikeAlbum(ctx context.Context, userID, albumID string) error {
	args := m.Called(ctx, userID, albumID)
	return args.Error(0)
}

func (m *MockAlbumService) GetAlbumLikes(ctx context.Context, albumID string) (int64, bool, error) {
	args := m.Called(ctx, albumID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// MockPlaylistService is a mock implementation of service.IPlaylistService
type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) CreatePlaylist(ctx context.Context, name, owner string) (string, error) {
	args := m.Called(ctx, name, owner)
	return args.String(0), args.Error(1)
}

func (m *MockPlaylistService) GetPlaylists(ctx context.Context, userID string) ([]model.PlaylistSummary, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]model.PlaylistSummary), args.Bool(1), args.Error(2)
}

func (m *MockPlaylistService) DeletePlaylist(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockPlaylistService) AddPlaylistSong(ctx context.Context, playlistID, songID, userID string) error {
	args := m.Called(ctx, playlistID, songID, userID)
	return args.Error(0)
}

func (m *MockPlaylistService) GetPlaylistSongs(ctx context.Context, playlistID, userID string) (*model.PlaylistDetail, error) {
	args := m.Called(ctx, playlistID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistService) DeletePlaylistSong(ctx context.Context, playlistID, songID, userID string) error {
	args := m.Called(ctx, playlistID, songID, userID)
	return args.Error(0)
}

func (m *MockPlaylistService) GetPlaylistActivities(ctx context.Context, playlistID, userID string) ([]model.ActivityEntry, bool, error) {
	args := m.Called(ctx, playlistID, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]model.ActivityEntry), args.Bool(1), args.Error(2)
}

func (m *MockPlaylistService) VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockPlaylistService) VerifyPlaylistAccess(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

// MockExportService is a mock implementation of service.IExportService
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportPlaylist(ctx context.Context, playlistID, userID, targetEmail string) error {
	args := m.Called(ctx, playlistID, userID, targetEmail)
	return args.Error(0)
}
