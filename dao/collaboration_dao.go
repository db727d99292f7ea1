// dao/collaboration_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmusic-api/openmusic/audit"
	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/model"
)

// ICollaborationDAO is the persistence contract for playlist collaborations.
type ICollaborationDAO interface {
	AddCollaboration(ctx context.Context, playlistID, userID string) (string, error)
	DeleteCollaboration(ctx context.Context, playlistID, userID string) error
	HasCollaboration(ctx context.Context, playlistID, userID string) (bool, error)
}

type CollaborationDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewCollaborationDAO(db *gorm.DB, auditService audit.Service) *CollaborationDAO {
	return &CollaborationDAO{db: db, auditService: auditService}
}

func (dao *CollaborationDAO) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	collaboration := model.Collaboration{
		ID:         uuid.New().String(),
		PlaylistID: playlistID,
		UserID:     userID,
	}
	err := dao.db.WithContext(ctx).Create(&collaboration).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", om_errors.ErrCollaborationConflict
	} else if err != nil {
		return "", fmt.Errorf("failed to add collaboration: %w", err)
	}
	logChange(ctx, dao.auditService, userID, "create", "collaboration", collaboration.ID)
	return collaboration.ID, nil
}

func (dao *CollaborationDAO) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	result := dao.db.WithContext(ctx).
		Where("playlist_id = ? AND user_id = ?", playlistID, userID).
		Delete(&model.Collaboration{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete collaboration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrCollaborationNotFound
	}
	logChange(ctx, dao.auditService, userID, "delete", "collaboration", playlistID)
	return nil
}

func (dao *CollaborationDAO) HasCollaboration(ctx context.Context, playlistID, userID string) (bool, error) {
	var count int64
	err := dao.db.WithContext(ctx).
		Model(&model.Collaboration{}).
		Where("playlist_id = ? AND user_id = ?", playlistID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check collaboration: %w", err)
	}
	return count > 0, nil
}
