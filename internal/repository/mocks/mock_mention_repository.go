package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/engr401-groot-ai/notification-system-server/internal/model"
)

type MockMentionRepository struct {
	mock.Mock
}

func (m *MockMentionRepository) RecentSince(ctx context.Context, hours int) ([]model.Mention, error) {
	args := m.Called(ctx, hours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Mention), args.Error(1)
}
