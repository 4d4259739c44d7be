package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	origProject := os.Getenv("GCP_PROJECT_ID")
	defer os.Setenv("GCP_PROJECT_ID", origProject)

	os.Setenv("GCP_PROJECT_ID", "groot-ai-prod")
	os.Setenv("BQ_DATASET", "mentions_ds")
	os.Setenv("PORT", "9090")
	defer os.Unsetenv("BQ_DATASET")
	defer os.Unsetenv("PORT")

	cfg := Load()

	assert.Equal(t, "groot-ai-prod", cfg.GCP.ProjectID)
	assert.Equal(t, "mentions_ds", cfg.GCP.Dataset)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GCP_PROJECT_ID", "BQ_DATASET", "BQ_MENTIONS_TABLE",
		"FIRESTORE_DATABASE", "FIRESTORE_SETTINGS_COLLECTION", "FIRESTORE_SETTINGS_DOC",
	} {
		orig := os.Getenv(key)
		os.Unsetenv(key)
		defer os.Setenv(key, orig)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "your-gcp-project", cfg.GCP.ProjectID)
	assert.Equal(t, "mentions", cfg.GCP.MentionsTable)
	assert.Equal(t, "notification-system", cfg.GCP.FirestoreDatabase)
	assert.Equal(t, "settings", cfg.GCP.SettingsCollection)
	assert.Equal(t, "configuration", cfg.GCP.SettingsDoc)
}

func TestMentionsTableID(t *testing.T) {
	g := GCPConfig{ProjectID: "p", Dataset: "d", MentionsTable: "mentions"}
	assert.Equal(t, "p.d.mentions", g.MentionsTableID())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
