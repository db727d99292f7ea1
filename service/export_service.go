package service

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/util"
)

// ExportService hands playlist exports off to the background queue. The
// request is acknowledged as soon as the job is enqueued; delivery happens
// out of band.
type ExportService struct {
	playlists PlaylistAccessVerifier
	producer  util.Producer
}

func NewExportService(playlists PlaylistAccessVerifier, producer util.Producer) *ExportService {
	return &ExportService{playlists: playlists, producer: producer}
}

// ExportPlaylist enqueues an export job. Authorization runs before anything
// touches the queue so an unauthorized request never produces a job.
func (s *ExportService) ExportPlaylist(ctx context.Context, playlistID, userID, targetEmail string) error {
	if err := s.playlists.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		return err
	}

	if err := s.producer.ExportPlaylist(ctx, playlistID, targetEmail); err != nil {
		logger.Error("Failed to enqueue playlist export",
			zap.String("playlistID", playlistID), zap.Error(err))
		return err
	}

	logger.Info("Playlist export queued",
		zap.String("playlistID", playlistID), zap.String("targetEmail", targetEmail))
	return nil
}
