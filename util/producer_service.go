// util/producer_service.go

package util

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/openmusic-api/openmusic/jobs"
	logger "github.com/openmusic-api/openmusic/logging"
)

// Producer publishes export jobs to the queue. The producer holds no state
// about a job after a successful enqueue.
type Producer interface {
	ExportPlaylist(ctx context.Context, playlistID, targetEmail string) error
}

type ProducerService struct {
	client *asynq.Client
}

func NewProducerService(redisAddr string) *ProducerService {
	return &ProducerService{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

// ExportPlaylist serializes a job descriptor and hands it to the queue.
// Fire-and-forget: no retries, no idempotency key, duplicate submissions
// produce duplicate downstream jobs.
func (p *ProducerService) ExportPlaylist(ctx context.Context, playlistID, targetEmail string) error {
	payload, err := json.Marshal(jobs.ExportPlaylistPayload{
		PlaylistID:  playlistID,
		TargetEmail: targetEmail,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal export payload: %w", err)
	}

	task := asynq.NewTask(jobs.TaskExportPlaylist, payload)
	info, err := p.client.EnqueueContext(ctx, task,
		asynq.Queue("exports"),
		asynq.MaxRetry(0),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue export job: %w", err)
	}

	logger.Info("Export job enqueued",
		zap.String("taskID", info.ID),
		zap.String("playlistID", playlistID))
	return nil
}

func (p *ProducerService) Close() error {
	return p.client.Close()
}
