// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogChange(ctx context.Context, userID, action, entity, entityID string) error {
	args := m.Called(ctx, userID, action, entity, entityID)
	return args.Error(0)
}
