package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/engr401-groot-ai/notification-system-server/internal/model"
	"github.com/engr401-groot-ai/notification-system-server/internal/repository"
)

// SettingsFirestore is a Firestore implementation of repository.SettingsRepository.
// All settings live in one document; partial writes use merge semantics so
// concurrent field updates do not clobber each other.
type SettingsFirestore struct {
	client     *firestore.Client
	collection string
	doc        string
}

// NewSettingsFirestore creates a new SettingsFirestore repository.
func NewSettingsFirestore(client *firestore.Client, collection, doc string) *SettingsFirestore {
	return &SettingsFirestore{client: client, collection: collection, doc: doc}
}

var _ repository.SettingsRepository = (*SettingsFirestore)(nil)

// Fetch reads the settings document.
func (r *SettingsFirestore) Fetch(ctx context.Context) (*model.NotificationSettings, error) {
	snap, err := r.client.Collection(r.collection).Doc(r.doc).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch settings document: %w", err)
	}
	if !snap.Exists() {
		return nil, repository.ErrSettingsNotFound
	}

	settings := settingsFromData(snap.Data())
	return &settings, nil
}

// Save merge-writes the non-nil fields of upd, creating the document if missing.
func (r *SettingsFirestore) Save(ctx context.Context, upd repository.SettingsUpdate) error {
	data := map[string]interface{}{}
	if upd.Sender != nil {
		data["sender"] = *upd.Sender
	}
	if upd.Password != nil {
		data["password"] = *upd.Password
	}
	if upd.Recipients != nil {
		data["recipients"] = *upd.Recipients
	}
	if len(data) == 0 {
		return nil
	}

	if _, err := r.client.Collection(r.collection).Doc(r.doc).Set(ctx, data, firestore.MergeAll); err != nil {
		return fmt.Errorf("save settings document: %w", err)
	}
	return nil
}

// settingsFromData coerces the raw document into the model. The document is
// hand-edited in places, so field types are not trusted: anything that is not
// the expected type degrades to the zero value rather than failing the read.
func settingsFromData(data map[string]interface{}) model.NotificationSettings {
	s := model.NotificationSettings{
		Recipients: []string{},
	}
	if v, ok := data["sender"].(string); ok {
		s.Sender = v
	}
	if v, ok := data["password"].(string); ok {
		s.Password = v
	}
	if list, ok := data["recipients"].([]interface{}); ok {
		for _, item := range list {
			if addr, ok := item.(string); ok {
				s.Recipients = append(s.Recipients, addr)
			}
		}
	}
	return s
}
