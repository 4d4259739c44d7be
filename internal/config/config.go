package config

import (
	"os"
	"strconv"
)

// GCPConfig holds Google Cloud settings for the BigQuery mentions archive
// and the Firestore settings store.
type GCPConfig struct {
	ProjectID          string
	Dataset            string
	MentionsTable      string
	FirestoreDatabase  string
	SettingsCollection string
	SettingsDoc        string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	GCP     GCPConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		GCP: GCPConfig{
			ProjectID:          getEnv("GCP_PROJECT_ID", "your-gcp-project"),
			Dataset:            getEnv("BQ_DATASET", "your_dataset"),
			MentionsTable:      getEnv("BQ_MENTIONS_TABLE", "mentions"),
			FirestoreDatabase:  getEnv("FIRESTORE_DATABASE", "notification-system"),
			SettingsCollection: getEnv("FIRESTORE_SETTINGS_COLLECTION", "settings"),
			SettingsDoc:        getEnv("FIRESTORE_SETTINGS_DOC", "configuration"),
		},
	}
}

// MentionsTableID returns the fully qualified BigQuery table identifier,
// e.g. "project.dataset.mentions".
func (g GCPConfig) MentionsTableID() string {
	return g.ProjectID + "." + g.Dataset + "." + g.MentionsTable
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
