package bigquery

import (
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
)

func TestMentionFromRow(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)

	t.Run("full row builds timestamped link", func(t *testing.T) {
		m := mentionFromRow(map[string]bigquery.Value{
			"video_name": "Lecture 12",
			"keyword":    "groot",
			"text":       "…and groot said…",
			"video_url":  "https://youtube.com/watch?v=abc",
			"start_sec":  float64(93.7),
			"created_at": created,
		})

		assert.Equal(t, "Lecture 12", m.VideoName)
		assert.Equal(t, "groot", m.Keyword)
		assert.Equal(t, "https://youtube.com/watch?v=abc&t=93s", m.Link)
		assert.NotNil(t, m.StartSec)
		assert.Equal(t, 93.7, *m.StartSec)
		assert.Equal(t, "2026-08-01T12:30:00Z", m.CreatedAt)
	})

	t.Run("integer start_sec is accepted", func(t *testing.T) {
		m := mentionFromRow(map[string]bigquery.Value{
			"video_url": "https://youtube.com/watch?v=abc",
			"start_sec": int64(45),
		})

		assert.Equal(t, "https://youtube.com/watch?v=abc&t=45s", m.Link)
	})

	t.Run("missing start_sec falls back to bare url", func(t *testing.T) {
		m := mentionFromRow(map[string]bigquery.Value{
			"video_url": "https://youtube.com/watch?v=abc",
		})

		assert.Nil(t, m.StartSec)
		assert.Equal(t, "https://youtube.com/watch?v=abc", m.Link)
	})

	t.Run("missing url yields empty link", func(t *testing.T) {
		m := mentionFromRow(map[string]bigquery.Value{
			"start_sec": float64(10),
		})

		assert.Equal(t, "", m.Link)
	})

	t.Run("string created_at passes through", func(t *testing.T) {
		m := mentionFromRow(map[string]bigquery.Value{
			"created_at": "2026-08-01 12:30:00",
		})

		assert.Equal(t, "2026-08-01 12:30:00", m.CreatedAt)
	})

	t.Run("empty row maps to zero values", func(t *testing.T) {
		m := mentionFromRow(map[string]bigquery.Value{})

		assert.Equal(t, "", m.VideoName)
		assert.Equal(t, "", m.CreatedAt)
		assert.Nil(t, m.StartSec)
	})
}
