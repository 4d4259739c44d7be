package firestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsFromData(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		s := settingsFromData(map[string]interface{}{
			"sender":     "alerts@groot-ai.dev",
			"password":   "app-password",
			"recipients": []interface{}{"a@x.com", "b@y.com"},
		})

		assert.Equal(t, "alerts@groot-ai.dev", s.Sender)
		assert.Equal(t, "app-password", s.Password)
		assert.Equal(t, []string{"a@x.com", "b@y.com"}, s.Recipients)
	})

	t.Run("missing fields degrade to zero values", func(t *testing.T) {
		s := settingsFromData(map[string]interface{}{})

		assert.Equal(t, "", s.Sender)
		assert.Equal(t, "", s.Password)
		assert.Empty(t, s.Recipients)
	})

	t.Run("wrong types are ignored", func(t *testing.T) {
		s := settingsFromData(map[string]interface{}{
			"sender":     42,
			"recipients": "not-a-list",
		})

		assert.Equal(t, "", s.Sender)
		assert.Empty(t, s.Recipients)
	})

	t.Run("non-string recipients entries are skipped", func(t *testing.T) {
		s := settingsFromData(map[string]interface{}{
			"recipients": []interface{}{"a@x.com", 7, "b@y.com"},
		})

		assert.Equal(t, []string{"a@x.com", "b@y.com"}, s.Recipients)
	})
}
