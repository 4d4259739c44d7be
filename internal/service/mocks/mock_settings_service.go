package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/engr401-groot-ai/notification-system-server/internal/service"
)

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context) (*service.SettingsView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SettingsView), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, req service.UpdateSettingsRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
