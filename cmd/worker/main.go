package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/openmusic-api/openmusic/config"
	"github.com/openmusic-api/openmusic/dao"
	"github.com/openmusic-api/openmusic/db"
	"github.com/openmusic-api/openmusic/jobs"
	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/model"
	"github.com/openmusic-api/openmusic/util"
)

// exportDocument is the JSON body attached to the export email.
type exportDocument struct {
	Playlist struct {
		ID    string              `json:"id"`
		Name  string              `json:"name"`
		Songs []model.SongSummary `json:"songs"`
	} `json:"playlist"`
}

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	gdb, err := db.NewPostgres(config.GetString("postgres.dsn"))
	if err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres(gdb)

	// The worker only reads, so it skips the audit trail.
	playlistDAO := dao.NewPlaylistDAO(gdb, nil)
	songDAO := dao.NewSongDAO(gdb, nil)
	notificationService := util.NewNotificationService()

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: config.GetString("queue.redisAddr")}, asynq.Config{
		Concurrency: 8,
		Queues: map[string]int{
			"exports": 10, // higher priority
			"default": 5,  // default priority
		},
	})
	mux := asynq.NewServeMux()

	mux.HandleFunc(jobs.TaskExportPlaylist, func(ctx context.Context, t *asynq.Task) error {
		var p jobs.ExportPlaylistPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logger.Error("Bad export payload", zap.Error(err))
			return err
		}

		start := time.Now()
		err := exportPlaylist(ctx, playlistDAO, songDAO, notificationService, p)
		duration := time.Since(start)

		if err != nil {
			logger.Error("Export failed",
				zap.String("playlistID", p.PlaylistID),
				zap.Duration("duration", duration),
				zap.Error(err))
			return err
		}

		logger.Info("Export done",
			zap.String("playlistID", p.PlaylistID),
			zap.String("targetEmail", p.TargetEmail),
			zap.Duration("duration", duration))
		return nil
	})

	logger.Info("Worker running...")
	if err := srv.Run(mux); err != nil {
		logger.Fatal("Worker stopped", zap.Error(err))
	}
}

func exportPlaylist(
	ctx context.Context,
	playlistDAO dao.IPlaylistDAO,
	songDAO dao.ISongDAO,
	notificationService *util.NotificationService,
	p jobs.ExportPlaylistPayload,
) error {
	playlist, err := playlistDAO.GetPlaylistByID(ctx, p.PlaylistID)
	if err != nil {
		return fmt.Errorf("get playlist: %w", err)
	}

	songs, err := songDAO.GetSongsOnPlaylist(ctx, p.PlaylistID)
	if err != nil {
		return fmt.Errorf("get playlist songs: %w", err)
	}

	var doc exportDocument
	doc.Playlist.ID = playlist.ID
	doc.Playlist.Name = playlist.Name
	doc.Playlist.Songs = songs

	attachment, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}

	if err := notificationService.SendExportEmail(ctx, p.TargetEmail, playlist.Name, attachment); err != nil {
		return fmt.Errorf("send export email: %w", err)
	}
	return nil
}
