// service/export_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/service"
	"github.com/openmusic-api/openmusic/test/mock"
)

func TestExportPlaylistEnqueuesJob(t *testing.T) {
	playlists := new(mock.MockPlaylistService)
	producer := new(mock.MockProducer)
	svc := service.NewExportService(playlists, producer)

	playlists.On("VerifyPlaylistAccess", tmock.Anything, "playlist-1", "user-1").Return(nil)
	producer.On("ExportPlaylist", tmock.Anything, "playlist-1", "me@example.com").Return(nil)

	err := svc.ExportPlaylist(context.Background(), "playlist-1", "user-1", "me@example.com")
	assert.NoError(t, err)
	producer.AssertExpectations(t)
}

func TestExportPlaylistDeniedNeverEnqueues(t *testing.T) {
	playlists := new(mock.MockPlaylistService)
	producer := new(mock.MockProducer)
	svc := service.NewExportService(playlists, producer)

	playlists.On("VerifyPlaylistAccess", tmock.Anything, "playlist-1", "stranger").
		Return(om_errors.ErrPlaylistAccessDenied)

	err := svc.ExportPlaylist(context.Background(), "playlist-1", "stranger", "me@example.com")
	assert.ErrorIs(t, err, om_errors.ErrPlaylistAccessDenied)
	producer.AssertNotCalled(t, "ExportPlaylist", tmock.Anything, tmock.Anything, tmock.Anything)
}

func TestExportPlaylistBrokerErrorPropagates(t *testing.T) {
	playlists := new(mock.MockPlaylistService)
	producer := new(mock.MockProducer)
	svc := service.NewExportService(playlists, producer)

	brokerErr := errors.New("queue unavailable")
	playlists.On("VerifyPlaylistAccess", tmock.Anything, "playlist-1", "user-1").Return(nil)
	producer.On("ExportPlaylist", tmock.Anything, "playlist-1", "me@example.com").Return(brokerErr)

	err := svc.ExportPlaylist(context.Background(), "playlist-1", "user-1", "me@example.com")
	assert.ErrorIs(t, err, brokerErr)
}
