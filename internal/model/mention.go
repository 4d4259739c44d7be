package model

// Mention represents one keyword hit inside a video transcript.
// This is a pure domain model with no storage-specific dependencies or tags.
// It can be used across layers (HTTP, service, repository) without coupling to persistence.
type Mention struct {
	VideoName string   `json:"video_name"`
	Keyword   string   `json:"keyword"`
	Text      string   `json:"text"`
	VideoURL  string   `json:"video_url"`
	Link      string   `json:"link"`
	StartSec  *float64 `json:"start_sec"`
	CreatedAt string   `json:"created_at"`
}
