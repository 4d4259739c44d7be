package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (bigquery, firestore) inside this directory.

import (
	"context"
	"errors"

	"github.com/engr401-groot-ai/notification-system-server/internal/model"
)

// ErrSettingsNotFound is returned when the settings document does not exist yet.
var ErrSettingsNotFound = errors.New("settings document not found")

// MentionRepository defines read access to the mentions archive.
// No business logic here — strictly query operations.
type MentionRepository interface {
	// RecentSince returns mentions created within the last `hours` hours,
	// newest first.
	RecentSince(ctx context.Context, hours int) ([]model.Mention, error)
}

// SettingsUpdate carries a partial update of the settings document.
// Nil fields are left untouched.
type SettingsUpdate struct {
	Sender     *string
	Password   *string
	Recipients *[]string
}

// IsEmpty reports whether the update would touch no field at all.
func (u SettingsUpdate) IsEmpty() bool {
	return u.Sender == nil && u.Password == nil && u.Recipients == nil
}

// SettingsRepository defines data access for the notification settings document.
type SettingsRepository interface {
	// Fetch returns the stored settings, or ErrSettingsNotFound if the
	// document has never been written.
	Fetch(ctx context.Context) (*model.NotificationSettings, error)

	// Save merges the non-nil fields of upd into the settings document,
	// creating it if missing.
	Save(ctx context.Context, upd SettingsUpdate) error
}
