package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/engr401-groot-ai/notification-system-server/internal/model"
	"github.com/engr401-groot-ai/notification-system-server/internal/repository"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Fetch(ctx context.Context) (*model.NotificationSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, upd repository.SettingsUpdate) error {
	args := m.Called(ctx, upd)
	return args.Error(0)
}
