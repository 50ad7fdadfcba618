package repository

import (
	"context"

	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

// Repository owns the durable meeting records. Records are insert-only.
type Repository interface {
	Create(ctx context.Context, filename, transcript, summary string, actionItems []string) (string, error)
	Get(ctx context.Context, id string) (meeting.Record, error)
	Search(ctx context.Context, query string) ([]meeting.SearchHit, error)
	Close() error
}
