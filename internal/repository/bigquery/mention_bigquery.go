package bigquery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/engr401-groot-ai/notification-system-server/internal/model"
	"github.com/engr401-groot-ai/notification-system-server/internal/repository"
)

// MentionBigQuery is a BigQuery implementation of repository.MentionRepository.
// It uses parameterized queries and contains no business logic.
type MentionBigQuery struct {
	client  *bigquery.Client
	tableID string
}

// NewMentionBigQuery creates a new MentionBigQuery repository.
// tableID is the fully qualified table, e.g. "project.dataset.mentions".
func NewMentionBigQuery(client *bigquery.Client, tableID string) *MentionBigQuery {
	return &MentionBigQuery{client: client, tableID: tableID}
}

var _ repository.MentionRepository = (*MentionBigQuery)(nil)

// RecentSince runs the recent-mentions query with a bound @hours parameter.
func (r *MentionBigQuery) RecentSince(ctx context.Context, hours int) ([]model.Mention, error) {
	sql := fmt.Sprintf(`
		SELECT video_name, keyword, text, video_url, start_sec, created_at
		FROM `+"`%s`"+`
		WHERE CAST(created_at AS TIMESTAMP) > TIMESTAMP_SUB(CURRENT_TIMESTAMP(), INTERVAL @hours HOUR)
		ORDER BY created_at DESC
	`, r.tableID)

	q := r.client.Query(sql)
	q.Parameters = []bigquery.QueryParameter{
		{Name: "hours", Value: int64(hours)},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mentions: %w", err)
	}

	mentions := make([]model.Mention, 0)
	for {
		var row map[string]bigquery.Value
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read mention row: %w", err)
		}
		mentions = append(mentions, mentionFromRow(row))
	}

	return mentions, nil
}

// mentionFromRow converts one result row into the domain model.
// Column types are not pinned by the table schema, so values are coerced
// defensively; a missing or malformed start_sec leaves the link as the bare
// video URL.
func mentionFromRow(row map[string]bigquery.Value) model.Mention {
	m := model.Mention{
		VideoName: stringValue(row["video_name"]),
		Keyword:   stringValue(row["keyword"]),
		Text:      stringValue(row["text"]),
		VideoURL:  stringValue(row["video_url"]),
		StartSec:  floatValue(row["start_sec"]),
		CreatedAt: timeValue(row["created_at"]),
	}

	m.Link = m.VideoURL
	if m.VideoURL != "" && m.StartSec != nil {
		m.Link = fmt.Sprintf("%s&t=%ds", m.VideoURL, int64(*m.StartSec))
	}
	return m
}

func stringValue(v bigquery.Value) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func floatValue(v bigquery.Value) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

func timeValue(v bigquery.Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
