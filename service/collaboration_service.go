package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/openmusic-api/openmusic/dao"
	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/model"
	"github.com/openmusic-api/openmusic/util"
)

// CollaborationService grants and revokes shared playlist access. Only the
// playlist owner may manage collaborators.
type CollaborationService struct {
	collaborationDAO dao.ICollaborationDAO
	userDAO          dao.IUserDAO
	playlists        PlaylistOwnershipVerifier
	cache            util.Cacher
}

func NewCollaborationService(
	collaborationDAO dao.ICollaborationDAO,
	userDAO dao.IUserDAO,
	playlists PlaylistOwnershipVerifier,
	cache util.Cacher,
) *CollaborationService {
	return &CollaborationService{
		collaborationDAO: collaborationDAO,
		userDAO:          userDAO,
		playlists:        playlists,
		cache:            cache,
	}
}

func (s *CollaborationService) AddCollaboration(ctx context.Context, payload model.CollaborationPayload, requesterID string) (string, error) {
	if err := s.playlists.VerifyPlaylistOwner(ctx, payload.PlaylistID, requesterID); err != nil {
		return "", err
	}
	if _, err := s.userDAO.GetUserByID(ctx, payload.UserID); err != nil {
		return "", err
	}

	collaborationID, err := s.collaborationDAO.AddCollaboration(ctx, payload.PlaylistID, payload.UserID)
	if err != nil {
		return "", err
	}

	// The collaborator now sees this playlist in their listing.
	s.invalidate(ctx, util.UserPlaylistsKey(payload.UserID))
	logger.Info("Collaboration added",
		zap.String("collaborationID", collaborationID),
		zap.String("playlistID", payload.PlaylistID),
		zap.String("userID", payload.UserID))
	return collaborationID, nil
}

func (s *CollaborationService) DeleteCollaboration(ctx context.Context, payload model.CollaborationPayload, requesterID string) error {
	if err := s.playlists.VerifyPlaylistOwner(ctx, payload.PlaylistID, requesterID); err != nil {
		return err
	}
	if err := s.collaborationDAO.DeleteCollaboration(ctx, payload.PlaylistID, payload.UserID); err != nil {
		return err
	}

	s.invalidate(ctx, util.UserPlaylistsKey(payload.UserID))
	return nil
}

func (s *CollaborationService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
