package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

type NewsStore struct {
	db *sqlx.DB
}

func NewNewsStore(db *sqlx.DB) *NewsStore {
	return &NewsStore{db: db}
}

// InsertBatch stores news items it has not seen before. Dispatches are
// immutable once stored: a conflicting id is skipped, never updated.
func (s *NewsStore) InsertBatch(ctx context.Context, rows []domain.NewsItem) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO war_news (id, published, type, tag_ids, message)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`

	exec := GetExecutor(ctx, s.db)
	for _, row := range rows {
		_, err := exec.ExecContext(ctx, query,
			row.ID,
			row.Published,
			row.Type,
			pq.Array(row.TagIDs),
			row.Message,
		)
		if err != nil {
			return fmt.Errorf("insert war_news item %d: %w", row.ID, err)
		}
	}

	return nil
}
