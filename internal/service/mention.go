package service

import (
	"context"
	"fmt"

	"github.com/engr401-groot-ai/notification-system-server/internal/model"
	"github.com/engr401-groot-ai/notification-system-server/internal/repository"
)

// DefaultLookbackHours is the mention feed window used when the caller does
// not supply one.
const DefaultLookbackHours = 24

// MentionFeed is the service-level DTO for the recent-mentions endpoint.
type MentionFeed struct {
	Count   int             `json:"count"`
	Results []model.Mention `json:"results"`
}

// MentionService defines the use cases for the mentions archive.
type MentionService interface {
	// Recent returns mentions created within the last `hours` hours, newest
	// first, wrapped with a count. Non-positive hours fall back to the default.
	Recent(ctx context.Context, hours int) (*MentionFeed, error)
}

// mentionService is a concrete implementation of MentionService.
type mentionService struct {
	repo repository.MentionRepository
}

// NewMentionService constructs a new MentionService.
func NewMentionService(repo repository.MentionRepository) MentionService {
	return &mentionService{repo: repo}
}

func (s *mentionService) Recent(ctx context.Context, hours int) (*MentionFeed, error) {
	if hours <= 0 {
		hours = DefaultLookbackHours
	}

	mentions, err := s.repo.RecentSince(ctx, hours)
	if err != nil {
		return nil, fmt.Errorf("recent mentions: %w", err)
	}
	if mentions == nil {
		mentions = []model.Mention{}
	}
	return &MentionFeed{Count: len(mentions), Results: mentions}, nil
}
