// service/services.go
package service

import (
	"context"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/openmusic-api/openmusic/audit"
	"github.com/openmusic-api/openmusic/dao"
	"github.com/openmusic-api/openmusic/model"
	"github.com/openmusic-api/openmusic/util"
)

type IAlbumService interface {
	CreateAlbum(ctx context.Context, payload model.AlbumPayload) (string, error)
	GetAlbum(ctx context.Context, id string) (*model.AlbumDetail, error)
	UpdateAlbum(ctx context.Context, id string, payload model.AlbumPayload) error
	DeleteAlbum(ctx context.Context, id string) error
	UploadCover(ctx context.Context, id string, file *multipart.FileHeader) (string, error)
	CoverFilePath(filename string) (string, error)
	LikeAlbum(ctx context.Context, userID, albumID string) error
	UnlikeAlbum(ctx context.Context, userID, albumID string) error
	GetAlbumLikes(ctx context.Context, albumID string) (int64, bool, error)
}

type ISongService interface {
	CreateSong(ctx context.Context, payload model.SongPayload) (string, error)
	GetSong(ctx context.Context, id string) (*model.Song, error)
	UpdateSong(ctx context.Context, id string, payload model.SongPayload) error
	DeleteSong(ctx context.Context, id string) error
	ListSongs(ctx context.Context, title, performer string) ([]model.SongSummary, error)
}

type IUserService interface {
	Register(ctx context.Context, payload model.UserPayload) (string, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
}

type IAuthenticationService interface {
	Login(ctx context.Context, payload model.LoginPayload) (accessToken, refreshToken string, err error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type IPlaylistService interface {
	CreatePlaylist(ctx context.Context, name, owner string) (string, error)
	GetPlaylists(ctx context.Context, userID string) ([]model.PlaylistSummary, bool, error)
	DeletePlaylist(ctx context.Context, playlistID, userID string) error
	AddPlaylistSong(ctx context.Context, playlistID, songID, userID string) error
	GetPlaylistSongs(ctx context.Context, playlistID, userID string) (*model.PlaylistDetail, error)
	DeletePlaylistSong(ctx context.Context, playlistID, songID, userID string) error
	GetPlaylistActivities(ctx context.Context, playlistID, userID string) ([]model.ActivityEntry, bool, error)
	VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error
	VerifyPlaylistAccess(ctx context.Context, playlistID, userID string) error
}

type ICollaborationService interface {
	AddCollaboration(ctx context.Context, payload model.CollaborationPayload, requesterID string) (string, error)
	DeleteCollaboration(ctx context.Context, payload model.CollaborationPayload, requesterID string) error
}

type IExportService interface {
	ExportPlaylist(ctx context.Context, playlistID, userID, targetEmail string) error
}

// PlaylistOwnershipVerifier is the slice of IPlaylistService the
// collaboration service needs.
type PlaylistOwnershipVerifier interface {
	VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error
}

// PlaylistAccessVerifier is the slice of IPlaylistService the export service
// needs.
type PlaylistAccessVerifier interface {
	VerifyPlaylistAccess(ctx context.Context, playlistID, userID string) error
}

type Services struct {
	Album          IAlbumService
	Song           ISongService
	User           IUserService
	Authentication IAuthenticationService
	Playlist       IPlaylistService
	Collaboration  ICollaborationService
	Export         IExportService
}

func InitializeServices(
	gdb *gorm.DB,
	auditService audit.Service,
	cacheService *util.CacheService,
	storageService *util.StorageService,
	producer util.Producer,
	tokenManager *util.TokenManager,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	baseURL string,
) (*Services, error) {
	albumDAO := dao.NewAlbumDAO(gdb, auditService)
	songDAO := dao.NewSongDAO(gdb, auditService)
	userDAO := dao.NewUserDAO(gdb, auditService)
	authenticationDAO := dao.NewAuthenticationDAO(gdb, auditService)
	playlistDAO := dao.NewPlaylistDAO(gdb, auditService)
	collaborationDAO := dao.NewCollaborationDAO(gdb, auditService)

	playlistService := NewPlaylistService(playlistDAO, songDAO, userDAO, collaborationDAO, cacheService, notificationSvc, eventBus)

	services := &Services{
		Album:          NewAlbumService(albumDAO, songDAO, storageService, cacheService, notificationSvc, eventBus, baseURL),
		Song:           NewSongService(songDAO),
		User:           NewUserService(userDAO),
		Authentication: NewAuthenticationService(userDAO, authenticationDAO, tokenManager),
		Playlist:       playlistService,
		Collaboration:  NewCollaborationService(collaborationDAO, userDAO, playlistService, cacheService),
		Export:         NewExportService(playlistService, producer),
	}

	return services, nil
}
