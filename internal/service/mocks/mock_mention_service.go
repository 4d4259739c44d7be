package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/engr401-groot-ai/notification-system-server/internal/service"
)

type MockMentionService struct {
	mock.Mock
}

func (m *MockMentionService) Recent(ctx context.Context, hours int) (*service.MentionFeed, error) {
	args := m.Called(ctx, hours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MentionFeed), args.Error(1)
}
