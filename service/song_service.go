package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/openmusic-api/openmusic/dao"
	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/model"
)

// SongService handles business logic for songs.
type SongService struct {
	songDAO dao.ISongDAO
}

func NewSongService(songDAO dao.ISongDAO) *SongService {
	return &SongService{songDAO: songDAO}
}

func (s *SongService) CreateSong(ctx context.Context, payload model.SongPayload) (string, error) {
	songID, err := s.songDAO.CreateSong(ctx, payload)
	if err != nil {
		logger.Error("Error creating song", zap.Error(err))
		return "", err
	}
	logger.Info("Song created", zap.String("songID", songID))
	return songID, nil
}

func (s *SongService) GetSong(ctx context.Context, id string) (*model.Song, error) {
	return s.songDAO.GetSongByID(ctx, id)
}

func (s *SongService) UpdateSong(ctx context.Context, id string, payload model.SongPayload) error {
	return s.songDAO.UpdateSong(ctx, id, payload)
}

func (s *SongService) DeleteSong(ctx context.Context, id string) error {
	return s.songDAO.DeleteSong(ctx, id)
}

func (s *SongService) ListSongs(ctx context.Context, title, performer string) ([]model.SongSummary, error) {
	return s.songDAO.ListSongs(ctx, title, performer)
}
