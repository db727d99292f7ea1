// audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogChange(ctx context.Context, userID, action, entity, entityID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogChange(ctx context.Context, userID, action, entity, entityID string) error {
	return s.repo.LogChange(ctx, Entry{
		Timestamp: time.Now(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
	})
}
