package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/openmusic-api/openmusic/dao"
	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/model"
	"github.com/openmusic-api/openmusic/util"
)

// AlbumService handles business logic for albums, cover art and likes.
type AlbumService struct {
	albumDAO        dao.IAlbumDAO
	songDAO         dao.ISongDAO
	storage         *util.StorageService
	cache           util.Cacher
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	baseURL         string
}

type albumLikeEvent struct {
	AlbumID string
	UserID  string
}

// NewAlbumService creates a new instance of AlbumService
func NewAlbumService(
	albumDAO dao.IAlbumDAO,
	songDAO dao.ISongDAO,
	storage *util.StorageService,
	cache util.Cacher,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	baseURL string,
) *AlbumService {
	service := &AlbumService{
		albumDAO:        albumDAO,
		songDAO:         songDAO,
		storage:         storage,
		cache:           cache,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		baseURL:         baseURL,
	}

	if eventBus != nil {
		eventBus.Subscribe("album.liked", service.handleLikeChanged)
		eventBus.Subscribe("album.unliked", service.handleLikeChanged)
	}

	return service
}

func (s *AlbumService) handleLikeChanged(ctx context.Context, event util.Event) error {
	like, ok := event.Payload.(albumLikeEvent)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	changeType := "liked"
	if event.Type == "album.unliked" {
		changeType = "unliked"
	}
	return s.notificationSvc.NotifyAlbumLikeChange(ctx, changeType, like.AlbumID, like.UserID)
}

func (s *AlbumService) CreateAlbum(ctx context.Context, payload model.AlbumPayload) (string, error) {
	albumID, err := s.albumDAO.CreateAlbum(ctx, payload)
	if err != nil {
		logger.Error("Error creating album", zap.Error(err))
		return "", err
	}
	logger.Info("Album created", zap.String("albumID", albumID))
	return albumID, nil
}

// GetAlbum returns the album joined with its songs and an absolute cover URL.
func (s *AlbumService) GetAlbum(ctx context.Context, id string) (*model.AlbumDetail, error) {
	var (
		album *model.Album
		songs []model.SongSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		album, err = s.albumDAO.GetAlbumByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		songs, err = s.songDAO.GetSongsByAlbumID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &model.AlbumDetail{
		ID:    album.ID,
		Name:  album.Name,
		Year:  album.Year,
		Songs: songs,
	}
	if album.Cover != nil {
		coverURL := s.coverURL(album.ID, *album.Cover)
		detail.CoverURL = &coverURL
	}
	return detail, nil
}

func (s *AlbumService) UpdateAlbum(ctx context.Context, id string, payload model.AlbumPayload) error {
	return s.albumDAO.UpdateAlbum(ctx, id, payload)
}

func (s *AlbumService) DeleteAlbum(ctx context.Context, id string) error {
	return s.albumDAO.DeleteAlbum(ctx, id)
}

// UploadCover validates and stores the cover, then records the filename on
// the album. Returns the public URL of the stored file.
func (s *AlbumService) UploadCover(ctx context.Context, id string, file *multipart.FileHeader) (string, error) {
	if _, err := s.albumDAO.GetAlbumByID(ctx, id); err != nil {
		return "", err
	}

	filename, err := s.storage.WriteCover(file)
	if err != nil {
		return "", err
	}

	if err := s.albumDAO.SetAlbumCover(ctx, id, filename); err != nil {
		return "", err
	}

	logger.Info("Album cover uploaded", zap.String("albumID", id), zap.String("filename", filename))
	return s.coverURL(id, filename), nil
}

func (s *AlbumService) CoverFilePath(filename string) (string, error) {
	return s.storage.CoverPath(filename)
}

func (s *AlbumService) LikeAlbum(ctx context.Context, userID, albumID string) error {
	if _, err := s.albumDAO.GetAlbumByID(ctx, albumID); err != nil {
		return err
	}
	if err := s.albumDAO.AddLike(ctx, userID, albumID); err != nil {
		return err
	}

	s.invalidate(ctx, util.AlbumLikesKey(albumID))
	s.eventBus.Publish(ctx, "album.liked", albumLikeEvent{AlbumID: albumID, UserID: userID})
	return nil
}

// UnlikeAlbum removes the caller's like. Unliking an album that was never
// liked returns a not-found error.
func (s *AlbumService) UnlikeAlbum(ctx context.Context, userID, albumID string) error {
	if err := s.albumDAO.DeleteLike(ctx, userID, albumID); err != nil {
		return err
	}

	s.invalidate(ctx, util.AlbumLikesKey(albumID))
	s.eventBus.Publish(ctx, "album.unliked", albumLikeEvent{AlbumID: albumID, UserID: userID})
	return nil
}

// GetAlbumLikes serves the like count through the cache-aside path. The
// boolean reports whether the count came from the cache.
func (s *AlbumService) GetAlbumLikes(ctx context.Context, albumID string) (int64, bool, error) {
	return util.Remember(ctx, s.cache, util.AlbumLikesKey(albumID),
		func(ctx context.Context) (int64, error) {
			return s.albumDAO.CountLikes(ctx, albumID)
		})
}

func (s *AlbumService) coverURL(albumID, filename string) string {
	return fmt.Sprintf("%s/albums/%s/covers/%s", s.baseURL, albumID, filename)
}

func (s *AlbumService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
